package common

import (
	"fmt"

	"github.com/freakmaxi/kertish-chunker/basics/errors"
)

// Restriction struct is to hold the half-open chunk index interval of a file
// that is not yet guaranteed to be processed
// From is the first claimable chunk index, 1 based, inclusive
// To is the ending boundary of the interval, exclusive
type Restriction struct {
	From uint64 `json:"from"`
	To   uint64 `json:"to"`
}

// NewRestriction initialises a new Restriction using the given boundaries
func NewRestriction(from uint64, to uint64) (Restriction, error) {
	if from == 0 || from > to {
		return Restriction{}, errors.ErrRestriction
	}

	return Restriction{
		From: from,
		To:   to,
	}, nil
}

// Count calculates the number of claimable chunk indices in the interval
func (r Restriction) Count() uint64 {
	return r.To - r.From
}

// Empty checks if the interval has any claimable chunk index
func (r Restriction) Empty() bool {
	return r.From == r.To
}

// Contains checks if the chunk index is inside the interval boundaries
func (r Restriction) Contains(index uint64) bool {
	return index >= r.From && index < r.To
}

// Units partitions the interval into single chunk index intervals in
// increasing order
func (r Restriction) Units() []Restriction {
	return r.Split(1)
}

// Split partitions the interval into consecutive intervals carrying at most
// limit chunk indices each, in increasing order. The ordered union of the
// result is always equal to the partitioned interval, no gap, no overlap
func (r Restriction) Split(limit uint64) []Restriction {
	if limit == 0 {
		limit = 1
	}

	var restrictions []Restriction
	for from := r.From; from < r.To; from += limit {
		to := from + limit
		if to > r.To {
			to = r.To
		}

		restrictions = append(restrictions, Restriction{From: from, To: to})
	}
	return restrictions
}

func (r Restriction) String() string {
	return fmt.Sprintf("[%d,%d)", r.From, r.To)
}
