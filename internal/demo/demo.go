// Package demo runs the illustrative scenario: it seeds a handful of
// accounts, wires friendships and sample payments between them and prints
// the rendered global feed. Nothing here is part of the ledger contract.
package demo

import (
	"fmt"
	"io"

	"payfeed/internal/core"
	"payfeed/internal/ledger"
	"payfeed/internal/log"
)

// Runner executes the demo scenario against a fresh ledger.
type Runner struct {
	logger *log.Logger
	out    io.Writer
}

// NewRunner creates a demo runner that prints the feed to out.
func NewRunner(logger *log.Logger, out io.Writer) *Runner {
	return &Runner{
		logger: logger.WithComponent(log.ComponentDemo),
		out:    out,
	}
}

// Run seeds three (or more) accounts and plays the scripted scenario on the
// first three: two friendships, a chain of cash payments, a rejected
// self-payment and a payment that falls back to the credit line. When
// seedFile is empty the built-in Alice/Bob/Charlie participants are used;
// extra seeded accounts beyond the first three stay idle bystanders.
func (r *Runner) Run(seedFile string) error {
	seeds := defaultSeeds()
	if seedFile != "" {
		loaded, err := LoadSeeds(seedFile)
		if err != nil {
			return err
		}
		r.logger.Info("Loaded demo seeds", log.FieldSeedFile, seedFile, log.FieldOperation, log.OpSeed)
		seeds = loaded
	}

	l := ledger.New()
	accounts := make([]*ledger.Account, 0, len(seeds))
	for _, s := range seeds {
		a := l.CreateAccount(s.Name, s.Balance)
		if s.HasCredit {
			a.AssignCreditLine(ledger.NewCreditLine(s.Credit))
		}
		accounts = append(accounts, a)
		r.logger.Info("Created account",
			log.FieldOperation, log.OpCreateAccount,
			log.FieldAccount, s.Name,
			log.FieldBalance, s.Balance.Cents)
	}

	a, b, c := accounts[0], accounts[1], accounts[2]

	r.addFriend(a, b)
	r.addFriend(b, c)

	r.pay(a, b, core.Money{Cents: 2500}, "lunch")
	r.pay(b, c, core.Money{Cents: 1000}, "movie ticket")
	r.pay(c, a, core.Money{Cents: 500}, "snack")
	r.pay(a, a, core.Money{Cents: 1000}, "self-payment") // always rejected
	r.pay(c, a, core.Money{Cents: 5000}, "gift")         // credit fallback with default seeds

	fmt.Fprintln(r.out, "Activity feed:")
	for _, entry := range l.RenderFeed() {
		fmt.Fprintln(r.out, entry)
	}
	r.logger.Info("Rendered feed", log.FieldOperation, log.OpRenderFeed)
	return nil
}

func (r *Runner) addFriend(a, b *ledger.Account) {
	ok := a.AddFriend(b)
	r.logger.Info("Friend request",
		log.FieldOperation, log.OpAddFriend,
		log.FieldAccount, a.Name(),
		log.FieldFriend, b.Name(),
		log.FieldSuccess, ok)
}

func (r *Runner) pay(from, to *ledger.Account, amount core.Money, description string) {
	ok := from.Pay(to, amount, description)
	r.logger.Info("Payment",
		log.FieldOperation, log.OpPay,
		log.FieldAccount, from.Name(),
		log.FieldRecipient, to.Name(),
		log.FieldAmountCents, amount.Cents,
		log.FieldDescription, description,
		log.FieldSuccess, ok)
}
