package domain

import (
	"fmt"

	"github.com/SscSPs/coin_converter/internal/apperrors"
)

// Breakdown is the greedy decomposition of an amount over one denomination table.
type Breakdown struct {
	// Counts holds one entry per denomination of the table, zero counts included.
	Counts map[DenominationName]int64
	// Remainder is the part of the amount the table could not express.
	Remainder int64

	table []Denomination
}

// BreakDown splits amount (in cents) over table, largest denomination first.
// The table must be sorted strictly descending by value.
// A negative amount yields an error wrapping apperrors.ErrInvalidArgument.
func BreakDown(amount int64, table []Denomination) (Breakdown, error) {
	if amount < 0 {
		return Breakdown{}, fmt.Errorf("%w: amount must be non-negative, got %d cents", apperrors.ErrInvalidArgument, amount)
	}

	counts := make(map[DenominationName]int64, len(table))
	remaining := amount
	for _, d := range table {
		counts[d.Name] = remaining / d.ValueInCents
		remaining %= d.ValueInCents
	}

	return Breakdown{
		Counts:    counts,
		Remainder: remaining,
		table:     table,
	}, nil
}

// Count returns the number of pieces of the named denomination.
func (b Breakdown) Count(name DenominationName) int64 {
	return b.Counts[name]
}

// Pieces returns the total number of bills or coins in the breakdown.
func (b Breakdown) Pieces() int64 {
	var total int64
	for _, n := range b.Counts {
		total += n
	}
	return total
}

// ValueInCents returns the amount covered by the counted pieces, excluding the remainder.
func (b Breakdown) ValueInCents() int64 {
	var total int64
	for _, d := range b.table {
		total += b.Counts[d.Name] * d.ValueInCents
	}
	return total
}
