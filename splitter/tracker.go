package splitter

import (
	"sync"

	"github.com/freakmaxi/kertish-chunker/basics/common"
)

// Tracker interface is for the sequential claiming of the chunk indices of
// one restriction and the dynamic splitting of the unclaimed part
type Tracker interface {
	TryClaim(index uint64) bool

	Remaining() common.Restriction
	Checkpoint() common.Restriction
	Release()

	Done() bool
}

type tracker struct {
	mutex *sync.Mutex

	cursor uint64
	to     uint64
	done   bool
}

// NewTracker creates the Tracker interface over the given restriction.
// The tracker is owned by the single worker processing the restriction,
// only the checkpoint and release calls of the engine can reach it from
// the outside
func NewTracker(restriction common.Restriction) (Tracker, error) {
	restriction, err := common.NewRestriction(restriction.From, restriction.To)
	if err != nil {
		return nil, err
	}

	return &tracker{
		mutex:  &sync.Mutex{},
		cursor: restriction.From - 1,
		to:     restriction.To,
	}, nil
}

// TryClaim takes the ownership of the chunk index for processing. Claims are
// possible one by one in increasing order inside the restriction boundaries.
// The first claim request out of that order ends the tracker permanently.
// It is the exhaustion signal of the live work, not an error
func (t *tracker) TryClaim(index uint64) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.done || index != t.cursor+1 || index >= t.to {
		t.done = true
		return false
	}

	t.cursor = index
	return true
}

// Remaining is the not yet claimed chunk index interval of the restriction
func (t *tracker) Remaining() common.Restriction {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return common.Restriction{From: t.cursor + 1, To: t.to}
}

// Checkpoint takes the not yet claimed chunk index interval away for the
// handover to another worker and ends the tracker permanently. An already
// ended tracker has nothing left to hand over, so the result is empty
func (t *tracker) Checkpoint() common.Restriction {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.done {
		return common.Restriction{From: t.cursor + 1, To: t.cursor + 1}
	}

	t.done = true
	return common.Restriction{From: t.cursor + 1, To: t.to}
}

// Release ends the tracker permanently without a handover
func (t *tracker) Release() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.done = true
}

func (t *tracker) Done() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.done
}

var _ Tracker = &tracker{}
