package demo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"payfeed/internal/core"
)

// Seed describes one demo participant: a name, a starting cash balance and
// an optional credit line.
type Seed struct {
	Name      string
	Balance   core.Money
	Credit    core.Money
	HasCredit bool
}

// defaultSeeds returns the built-in participants used when no seed file is
// configured.
func defaultSeeds() []Seed {
	return []Seed{
		{Name: "Alice", Balance: core.Money{Cents: 10000}, Credit: core.Money{Cents: 20000}, HasCredit: true},
		{Name: "Bob", Balance: core.Money{Cents: 5000}},
		{Name: "Charlie", Credit: core.Money{Cents: 10000}, HasCredit: true},
	}
}

// LoadSeeds reads demo participants from a seed file. Each line holds
// "<name> <balance> [credit]"; blank lines and lines starting with '#' are
// skipped. The scripted scenario needs at least three participants.
func LoadSeeds(path string) ([]Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var seeds []Seed
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("seed line %d: expected \"<name> <balance> [credit]\", got %q", lineNo, line)
		}
		seed := Seed{Name: fields[0]}
		balance, err := core.ParseAmount(fields[1])
		if err != nil {
			// A zero starting balance is valid for an account even though
			// ParseAmount rejects it for payment amounts.
			if fields[1] != "0" && fields[1] != "0.00" {
				return nil, fmt.Errorf("seed line %d: balance %q: %w", lineNo, fields[1], err)
			}
		}
		seed.Balance = balance
		if len(fields) == 3 {
			credit, err := core.ParseAmount(fields[2])
			if err != nil {
				return nil, fmt.Errorf("seed line %d: credit %q: %w", lineNo, fields[2], err)
			}
			seed.Credit = credit
			seed.HasCredit = true
		}
		seeds = append(seeds, seed)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	if len(seeds) < 3 {
		return nil, fmt.Errorf("seed file must define at least three accounts, got %d", len(seeds))
	}
	return seeds, nil
}
