package ledger

import (
	"fmt"
	"sync"

	"payfeed/internal/core"
)

// Account is a user of the ledger: a name, a cash balance, an optional
// credit line, a set of friends and an append-only activity log.
//
// Accounts are created through Ledger.CreateAccount and share their ledger's
// mutex, so balance changes, friend updates and log appends across a pair of
// accounts happen as a unit. Names are not required to be unique; identity is
// the account reference itself.
type Account struct {
	mu      *sync.Mutex // shared with the owning ledger
	name    string
	balance core.Money
	credit  *CreditLine
	friends map[*Account]struct{}
	log     []string
}

// Name returns the account's display name.
func (a *Account) Name() string {
	return a.name
}

// Balance returns the current cash balance.
func (a *Account) Balance() core.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// AssignCreditLine sets or replaces the account's credit line. The account
// does not take ownership; the same line may be assigned elsewhere.
func (a *Account) AssignCreditLine(credit *CreditLine) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit = credit
}

// AddFriend records a mutual friendship between the two accounts. It reports
// false without side effects when other is the account itself or already a
// friend. On success both friend sets are updated and each account's log
// gains one entry phrased from its own perspective.
func (a *Account) AddFriend(other *Account) bool {
	if other == a {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.friends[other]; ok {
		return false
	}
	a.friends[other] = struct{}{}
	other.friends[a] = struct{}{}
	a.log = append(a.log, fmt.Sprintf("%s and %s are now friends", a.name, other.name))
	other.log = append(other.log, fmt.Sprintf("%s and %s are now friends", other.name, a.name))
	return true
}

// HasFriend reports whether other is in the account's friend set.
func (a *Account) HasFriend(other *Account) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.friends[other]
	return ok
}

// Pay transfers amount to recipient, spending cash first and falling back to
// the assigned credit line when the cash balance does not cover the amount.
// It reports false without side effects for self-payments, non-positive
// amounts, or insufficient funds on both paths.
//
// A cash payment appends the same entry to both logs. A credit payment
// appends a payer-side entry that omits the payer's name and carries a
// "(credit card)" suffix, so the two sides render as distinct feed lines.
func (a *Account) Pay(recipient *Account, amount core.Money, description string) bool {
	if recipient == a {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.Cents >= amount.Cents {
		a.balance.Cents -= amount.Cents
		recipient.balance.Cents += amount.Cents
		entry := fmt.Sprintf("%s paid %s %s for %s", a.name, recipient.name, amount, description)
		a.log = append(a.log, entry)
		recipient.log = append(recipient.log, entry)
		return true
	}

	if a.credit != nil && a.credit.Debit(amount) {
		recipient.balance.Cents += amount.Cents
		a.log = append(a.log, fmt.Sprintf("Paid %s %s for %s (credit card)", recipient.name, amount, description))
		recipient.log = append(recipient.log, fmt.Sprintf("%s paid %s %s for %s", a.name, recipient.name, amount, description))
		return true
	}

	return false
}

// RetrieveActivity returns a copy of the account's activity log in insertion
// order. Mutating the returned slice does not affect the account.
func (a *Account) RetrieveActivity() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.log))
	copy(out, a.log)
	return out
}
