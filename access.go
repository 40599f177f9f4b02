package seqs

import "fmt"

// IsEmpty reports whether s holds no elements. On a lazy sequence at most one
// element is produced, and it stays readable from the same handle.
func IsEmpty(s Sequence) bool {
	return isEmptySequence(s)
}

// First returns the first element. It is the only positional accessor defined
// on lazy sequences: it pulls a single element, which counts as consumed.
func First(s Sequence) (Value, error) {
	if lazy, ok := s.(*LazySequence); ok {
		v, ok := lazy.pull()
		if !ok {
			return nil, fmt.Errorf("%w: sequence is empty", ErrIndexOutOfRange)
		}
		return v, nil
	}
	return Nth(s, 0)
}

// Second returns the second element.
func Second(s Sequence) (Value, error) {
	return Nth(s, 1)
}

// Last returns the last element.
func Last(s Sequence) (Value, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}
	return Nth(seq, seq.Len()-1)
}

// NextToLast returns the element before the last one.
func NextToLast(s Sequence) (Value, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}
	return Nth(seq, seq.Len()-2)
}

// Nth returns the element at index i. Undefined on lazy sequences: a bounded
// prefix must be taken first.
func Nth(s Sequence, i int) (Value, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= seq.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, seq.Len())
	}
	return seq.At(i), nil
}

// Length returns the number of elements of a finite sequence.
func Length(s Sequence) (int, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return 0, err
	}
	return seq.Len(), nil
}

// requireFinite rejects lazy sequences, whose size may be unbounded.
func requireFinite(s Sequence) (finiteSequence, error) {
	seq, ok := s.(finiteSequence)
	if !ok {
		return nil, ErrUnboundedSequence
	}
	return seq, nil
}
