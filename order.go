package seqs

import (
	"math/rand"
	"sort"
	"time"

	"github.com/polyseq/seqs/internal/utils"
)

// Reverse returns the elements in reverse order, keeping the input's
// representation. It requires a finite input.
func Reverse(s Sequence) (Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}
	return fromValues(resolvedKind(s), utils.ReversedSlice(iterateAll(s.Iterator()))), nil
}

// Sort returns the elements sorted by less, stably. A nil less means the
// documented natural order: numbers, then strings, then everything else by
// formatted representation.
func Sort(s Sequence, less func(a, b Value) bool) (Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}
	if less == nil {
		less = naturalLess
	}

	elements := iterateAll(s.Iterator())
	sort.SliceStable(elements, func(i, j int) bool {
		return less(elements[i], elements[j])
	})
	return fromValues(resolvedKind(s), elements), nil
}

// Shuffle returns the elements in an order drawn from rng; a nil rng uses a
// time-seeded source. Pass a seeded rng for reproducible results.
func Shuffle(s Sequence, rng *rand.Rand) (Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	elements := iterateAll(s.Iterator())
	rng.Shuffle(len(elements), func(i, j int) {
		elements[i], elements[j] = elements[j], elements[i]
	})
	return fromValues(resolvedKind(s), elements), nil
}
