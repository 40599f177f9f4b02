package seqs

// Map transforms every element with f. The result keeps the input's
// representation; over a lazy sequence the result is lazy and no element is
// transformed before it is consumed.
func Map(s Sequence, f func(Value) Value) Sequence {
	if lazy, ok := s.(*LazySequence); ok {
		return Generate(func() (Value, bool) {
			v, ok := lazy.pull()
			if !ok {
				return nil, false
			}
			return f(v), true
		})
	}

	it := s.Iterator()
	elements := make([]Value, 0)
	for it.Next() {
		elements = append(elements, f(it.Value()))
	}
	return fromValues(resolvedKind(s), elements)
}

// Filter keeps the elements satisfying pred, preserving order and
// representation. Over a lazy sequence the result is lazy: elements are
// tested one pull at a time.
func Filter(s Sequence, pred func(Value) bool) Sequence {
	if lazy, ok := s.(*LazySequence); ok {
		return Generate(func() (Value, bool) {
			for {
				v, ok := lazy.pull()
				if !ok {
					return nil, false
				}
				if pred(v) {
					return v, true
				}
			}
		})
	}

	it := s.Iterator()
	elements := make([]Value, 0)
	for it.Next() {
		if pred(it.Value()) {
			elements = append(elements, it.Value())
		}
	}
	return fromValues(resolvedKind(s), elements)
}

// Every reports whether pred holds for all elements. It short-circuits on the
// first failing element, so it terminates on an unbounded input whenever one
// exists.
func Every(s Sequence, pred func(Value) bool) bool {
	it := s.Iterator()
	for it.Next() {
		if !pred(it.Value()) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element, short-circuiting
// on the first match.
func Any(s Sequence, pred func(Value) bool) bool {
	it := s.Iterator()
	for it.Next() {
		if pred(it.Value()) {
			return true
		}
	}
	return false
}

// Reduce folds the elements left to right with f, using the first element as
// the starting accumulator. On an empty input it returns (nil, false) rather
// than failing.
func Reduce(s Sequence, f func(acc, v Value) Value) (Value, bool) {
	it := s.Iterator()
	if !it.Next() {
		return nil, false
	}
	acc := it.Value()
	for it.Next() {
		acc = f(acc, it.Value())
	}
	return acc, true
}

// Fold folds the elements left to right with f starting from seed. On an
// empty input it returns seed.
func Fold(s Sequence, seed Value, f func(acc, v Value) Value) Value {
	acc := seed
	it := s.Iterator()
	for it.Next() {
		acc = f(acc, it.Value())
	}
	return acc
}

// ForEach visits every element in order until fn returns false.
func ForEach(s Sequence, fn func(v Value) bool) {
	it := s.Iterator()
	for it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Count returns the number of elements satisfying pred.
func Count(s Sequence, pred func(Value) bool) (int, error) {
	if _, err := requireFinite(s); err != nil {
		return 0, err
	}
	n := 0
	it := s.Iterator()
	for it.Next() {
		if pred(it.Value()) {
			n++
		}
	}
	return n, nil
}
