package ledger

import (
	"testing"

	"payfeed/internal/core"
)

func newPair(t *testing.T, aBalance, bBalance int64) (*Ledger, *Account, *Account) {
	t.Helper()
	l := New()
	a := l.CreateAccount("Alice", core.Money{Cents: aBalance})
	b := l.CreateAccount("Bob", core.Money{Cents: bBalance})
	return l, a, b
}

func TestAddFriendSelf(t *testing.T) {
	_, a, _ := newPair(t, 0, 0)
	if a.AddFriend(a) {
		t.Fatalf("self-friendship must fail")
	}
	if len(a.RetrieveActivity()) != 0 {
		t.Fatalf("failed add must not log")
	}
}

func TestAddFriendSymmetricAndDuplicate(t *testing.T) {
	_, a, b := newPair(t, 0, 0)
	if !a.AddFriend(b) {
		t.Fatalf("first add should succeed")
	}
	if !a.HasFriend(b) || !b.HasFriend(a) {
		t.Fatalf("friendship must be symmetric")
	}
	if a.AddFriend(b) {
		t.Fatalf("duplicate add must fail")
	}
	if b.AddFriend(a) {
		t.Fatalf("reverse duplicate add must fail")
	}

	wantA := "Alice and Bob are now friends"
	wantB := "Bob and Alice are now friends"
	if got := a.RetrieveActivity(); len(got) != 1 || got[0] != wantA {
		t.Fatalf("unexpected Alice log: %v", got)
	}
	if got := b.RetrieveActivity(); len(got) != 1 || got[0] != wantB {
		t.Fatalf("unexpected Bob log: %v", got)
	}
}

func TestPayCashPath(t *testing.T) {
	_, a, b := newPair(t, 5000, 2000)
	if !a.Pay(b, core.Money{Cents: 1000}, "Coffee") {
		t.Fatalf("payment should succeed")
	}
	if a.Balance().Cents != 4000 {
		t.Fatalf("expected payer balance 4000, got %d", a.Balance().Cents)
	}
	if b.Balance().Cents != 3000 {
		t.Fatalf("expected recipient balance 3000, got %d", b.Balance().Cents)
	}

	want := "Alice paid Bob $10.00 for Coffee"
	if got := a.RetrieveActivity(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected payer log: %v", got)
	}
	if got := b.RetrieveActivity(); len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected recipient log: %v", got)
	}
}

func TestPayConservesTotal(t *testing.T) {
	_, a, b := newPair(t, 5000, 2000)
	before := a.Balance().Cents + b.Balance().Cents
	if !a.Pay(b, core.Money{Cents: 2500}, "lunch") {
		t.Fatalf("payment should succeed")
	}
	after := a.Balance().Cents + b.Balance().Cents
	if before != after {
		t.Fatalf("total changed across transfer: %d -> %d", before, after)
	}
}

func TestPayRejectsSelfAndNonPositive(t *testing.T) {
	_, a, b := newPair(t, 5000, 2000)
	cases := []struct {
		name      string
		recipient *Account
		cents     int64
	}{
		{"self", a, 1000},
		{"zero", b, 0},
		{"negative", b, -500},
	}
	for _, tc := range cases {
		if a.Pay(tc.recipient, core.Money{Cents: tc.cents}, "Invalid Payment") {
			t.Fatalf("%s: payment should fail", tc.name)
		}
	}
	if a.Balance().Cents != 5000 || b.Balance().Cents != 2000 {
		t.Fatalf("failed payments must not move money: %d / %d", a.Balance().Cents, b.Balance().Cents)
	}
	if len(a.RetrieveActivity()) != 0 || len(b.RetrieveActivity()) != 0 {
		t.Fatalf("failed payments must not log")
	}
}

func TestPayCreditFallback(t *testing.T) {
	_, a, b := newPair(t, 500, 2000)
	credit := NewCreditLine(core.Money{Cents: 8000})
	a.AssignCreditLine(credit)

	if !a.Pay(b, core.Money{Cents: 2000}, "Lunch") {
		t.Fatalf("credit payment should succeed")
	}
	if a.Balance().Cents != 500 {
		t.Fatalf("cash balance must stay untouched, got %d", a.Balance().Cents)
	}
	if credit.Balance().Cents != 6000 {
		t.Fatalf("expected credit balance 6000, got %d", credit.Balance().Cents)
	}
	if b.Balance().Cents != 4000 {
		t.Fatalf("expected recipient balance 4000, got %d", b.Balance().Cents)
	}

	// The payer-side entry omits the payer's name; the recipient sees the
	// cash wording. The two lines are intentionally different.
	wantPayer := "Paid Bob $20.00 for Lunch (credit card)"
	wantRecipient := "Alice paid Bob $20.00 for Lunch"
	if got := a.RetrieveActivity(); len(got) != 1 || got[0] != wantPayer {
		t.Fatalf("unexpected payer log: %v", got)
	}
	if got := b.RetrieveActivity(); len(got) != 1 || got[0] != wantRecipient {
		t.Fatalf("unexpected recipient log: %v", got)
	}
}

func TestPayInsufficientEverywhere(t *testing.T) {
	_, a, b := newPair(t, 200, 2000)
	credit := NewCreditLine(core.Money{Cents: 500})
	a.AssignCreditLine(credit)

	if a.Pay(b, core.Money{Cents: 2000}, "Dinner") {
		t.Fatalf("payment should fail")
	}
	if a.Balance().Cents != 200 || credit.Balance().Cents != 500 || b.Balance().Cents != 2000 {
		t.Fatalf("failed payment must not change any balance")
	}
	if len(a.RetrieveActivity()) != 0 || len(b.RetrieveActivity()) != 0 {
		t.Fatalf("failed payment must not log")
	}
}

func TestPayWithoutCreditLine(t *testing.T) {
	_, a, b := newPair(t, 100, 0)
	if a.Pay(b, core.Money{Cents: 200}, "Rent") {
		t.Fatalf("payment should fail without a credit line")
	}
	if a.Balance().Cents != 100 || b.Balance().Cents != 0 {
		t.Fatalf("failed payment must not move money")
	}
}

func TestPayExactCreditBalance(t *testing.T) {
	_, a, b := newPair(t, 0, 2000)
	credit := NewCreditLine(core.Money{Cents: 2000})
	a.AssignCreditLine(credit)

	if !a.Pay(b, core.Money{Cents: 2000}, "Exact Credit") {
		t.Fatalf("payment should succeed")
	}
	if credit.Balance().Cents != 0 {
		t.Fatalf("expected drained credit line, got %d", credit.Balance().Cents)
	}
	if b.Balance().Cents != 4000 {
		t.Fatalf("expected recipient balance 4000, got %d", b.Balance().Cents)
	}
}

func TestAssignCreditLineReplaces(t *testing.T) {
	_, a, b := newPair(t, 0, 0)
	small := NewCreditLine(core.Money{Cents: 100})
	big := NewCreditLine(core.Money{Cents: 10000})
	a.AssignCreditLine(small)
	a.AssignCreditLine(big)

	if !a.Pay(b, core.Money{Cents: 5000}, "Large Payment") {
		t.Fatalf("payment should succeed on the replacing line")
	}
	if small.Balance().Cents != 100 {
		t.Fatalf("replaced line must stay untouched, got %d", small.Balance().Cents)
	}
	if big.Balance().Cents != 5000 {
		t.Fatalf("expected 5000 left on the active line, got %d", big.Balance().Cents)
	}
}

func TestRetrieveActivityReturnsCopy(t *testing.T) {
	_, a, b := newPair(t, 1000, 0)
	a.Pay(b, core.Money{Cents: 100}, "snack")

	got := a.RetrieveActivity()
	got[0] = "tampered"
	if a.RetrieveActivity()[0] == "tampered" {
		t.Fatalf("returned log must be a copy")
	}
}
