// Package ledger implements an in-memory peer-to-peer payment ledger:
// accounts with cash balances and optional credit lines, mutual friendships,
// and per-account activity logs aggregated into a global feed.
//
// Fallible operations report failure with a plain boolean and leave all state
// unchanged; there is no partial mutation. One mutex owned by the Ledger
// serializes account creation, transfers, friendship updates and feed
// rendering across all of its accounts.
package ledger

import (
	"sync"

	"payfeed/internal/core"
)

// Ledger creates accounts and renders the global activity feed. Accounts are
// kept in creation order and are never removed.
type Ledger struct {
	mu       sync.Mutex
	accounts []*Account
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// CreateAccount creates an account with the given name and starting balance
// and registers it in creation order. Names are not checked for duplicates.
func (l *Ledger) CreateAccount(name string, balance core.Money) *Account {
	a := &Account{
		mu:      &l.mu,
		name:    name,
		balance: balance,
		friends: make(map[*Account]struct{}),
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts = append(l.accounts, a)
	return a
}

// Accounts returns a snapshot of the registered accounts in creation order.
func (l *Ledger) Accounts() []*Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// RenderFeed concatenates every account's activity log, in account-creation
// order and per-account log order, keeping only the first occurrence of each
// exact entry text. Cash payments write identical text to both sides and so
// collapse to one feed line; credit payments write different text per side
// and both lines survive.
func (l *Ledger) RenderFeed() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var feed []string
	seen := make(map[string]struct{})
	for _, a := range l.accounts {
		for _, entry := range a.log {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			feed = append(feed, entry)
		}
	}
	return feed
}
