package ledger

import (
	"sync"

	"payfeed/internal/core"
)

// CreditLine is a debit-only line of credit. It is not owned by any account:
// it can be created on its own, assigned after the fact, and in principle
// shared between accounts.
type CreditLine struct {
	mu      sync.Mutex
	balance core.Money
}

// NewCreditLine creates a credit line with the given available balance.
func NewCreditLine(balance core.Money) *CreditLine {
	return &CreditLine{balance: balance}
}

// Debit atomically checks and subtracts amount from the available balance.
// It reports false and leaves the balance unchanged when funds are
// insufficient. Sufficiency check and subtraction happen under one lock, so
// a successful result always means the funds were actually taken.
func (c *CreditLine) Debit(amount core.Money) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance.Cents >= amount.Cents {
		c.balance.Cents -= amount.Cents
		return true
	}
	return false
}

// Balance returns the currently available balance.
func (c *CreditLine) Balance() core.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}
