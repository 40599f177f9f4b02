package seqs

import "fmt"

// Concat concatenates sequences pairwise, resolving the representation of
// each pairwise result. Zero inputs give the canonical empty sequence; a
// single input is returned verbatim.
func Concat(sequences ...Sequence) Sequence {
	if len(sequences) == 0 {
		return Empty()
	}
	result := sequences[0]
	for _, s := range sequences[1:] {
		result = concat2(result, s)
	}
	return result
}

func concat2(a, b Sequence) Sequence {
	if a.Kind() == KindEmpty {
		return b
	}
	if b.Kind() == KindEmpty {
		return a
	}

	kind := CombinedKind(a.Kind(), b.Kind())
	if kind == KindLazy {
		first, second := a.Iterator(), b.Iterator()
		return Generate(func() (Value, bool) {
			if first.Next() {
				return first.Value(), true
			}
			if second.Next() {
				return second.Value(), true
			}
			return nil, false
		})
	}

	if kind == KindPersistent {
		return concatPersistent(a.(*PersistentSequence), b.(*PersistentSequence))
	}

	elements := iterateAll(a.Iterator())
	elements = append(elements, iterateAll(b.Iterator())...)
	return fromValues(kind, elements)
}

// Interleave alternates elements of a and b, starting with a. When one input
// runs out, the remaining tail of the other is appended unchanged; an empty
// input is the identity.
func Interleave(a, b Sequence) Sequence {
	if a.Kind() == KindEmpty {
		return b
	}
	if b.Kind() == KindEmpty {
		return a
	}

	kind := CombinedKind(a.Kind(), b.Kind())
	it := &interleaveIterator{first: a.Iterator(), second: b.Iterator()}
	if kind == KindLazy {
		return Generate(producerOf(it))
	}
	return materialize(kind, it)
}

type interleaveIterator struct {
	first, second Iterator
	fromSecond    bool
	current       Value
}

func (it *interleaveIterator) HasNext() bool {
	return it.first.HasNext() || it.second.HasNext()
}

func (it *interleaveIterator) Next() bool {
	preferred, other := it.first, it.second
	if it.fromSecond {
		preferred, other = other, preferred
	}
	source := preferred
	if source.HasNext() {
		it.fromSecond = !it.fromSecond
	} else {
		source = other
	}
	if !source.Next() {
		return false
	}
	it.current = source.Value()
	return true
}

func (it *interleaveIterator) Value() Value {
	return it.current
}

// Interpose inserts separator between every pair of adjacent elements.
func Interpose(s Sequence, separator Value) Sequence {
	if s.Kind() == KindEmpty {
		return s
	}

	it := &interposeIterator{it: s.Iterator(), separator: separator}
	if s.Kind() == KindLazy {
		return Generate(producerOf(it))
	}
	return materialize(resolvedKind(s), it)
}

type interposeIterator struct {
	it        Iterator
	separator Value
	sepNext   bool
	current   Value
}

func (it *interposeIterator) HasNext() bool {
	return it.sepNext || it.it.HasNext()
}

func (it *interposeIterator) Next() bool {
	if it.sepNext {
		it.sepNext = false
		it.current = it.separator
		return true
	}
	if !it.it.Next() {
		return false
	}
	it.current = it.it.Value()
	it.sepNext = it.it.HasNext()
	return true
}

func (it *interposeIterator) Value() Value {
	return it.current
}

// Join flattens a sequence of sequences into one, inserting the separator
// sequence between each pair of adjacent inner sequences. An element that is
// not a Sequence is an invalid argument. A lazy outer sequence is flattened
// lazily; there a non-sequence element panics with ErrInvalidArgument at
// production time, since the defect is only discoverable then.
func Join(s Sequence, separator Sequence) (Sequence, error) {
	// The separator is inserted repeatedly, so a single-pass lazy separator
	// must be captured once up front.
	separator = reusable(separator)

	if lazy, ok := s.(*LazySequence); ok {
		return joinLazy(lazy, separator), nil
	}

	it := s.Iterator()
	result := Sequence(Empty())
	first := true
	for it.Next() {
		inner, ok := it.Value().(Sequence)
		if !ok {
			return nil, fmt.Errorf("%w: join expects a sequence of sequences, got element of type %T", ErrInvalidArgument, it.Value())
		}
		if !first {
			result = concat2(result, separator)
		}
		result = concat2(result, inner)
		first = false
	}
	return result, nil
}

// reusable returns a sequence that can be iterated any number of times,
// materializing a single-pass lazy input.
func reusable(s Sequence) Sequence {
	if s.Kind() != KindLazy {
		return s
	}
	return fromValues(KindIndexed, iterateAll(s.Iterator()))
}

func joinLazy(s *LazySequence, separator Sequence) Sequence {
	sep := iterateAll(separator.Iterator())
	var inner Iterator
	sepIndex := len(sep) // in [0, len(sep)) while the separator is being emitted
	started := false

	return Generate(func() (Value, bool) {
		for {
			if sepIndex < len(sep) {
				v := sep[sepIndex]
				sepIndex++
				return v, true
			}
			if inner != nil {
				if inner.Next() {
					return inner.Value(), true
				}
				inner = nil
			}
			v, ok := s.pull()
			if !ok {
				return nil, false
			}
			innerSeq, isSeq := v.(Sequence)
			if !isSeq {
				panic(fmt.Errorf("%w: join expects a sequence of sequences, got element of type %T", ErrInvalidArgument, v))
			}
			inner = innerSeq.Iterator()
			if started {
				sepIndex = 0
			}
			started = true
		}
	})
}

// Join2 joins two sequences with a separator sequence between them. An empty
// side is the identity: the other side is returned unchanged, without
// separator.
func Join2(a, b, separator Sequence) Sequence {
	if a.Kind() == KindEmpty {
		return b
	}
	if b.Kind() == KindEmpty {
		return a
	}
	return concat2(concat2(a, separator), b)
}

// Zip combines a and b element-wise into pairs, stopping at the shorter
// input. Zipping with an empty sequence gives the empty sequence.
func Zip(a, b Sequence) Sequence {
	if a.Kind() == KindEmpty || b.Kind() == KindEmpty {
		return Empty()
	}

	kind := CombinedKind(a.Kind(), b.Kind())
	it := &zipIterator{first: a.Iterator(), second: b.Iterator()}
	if kind == KindLazy {
		return Generate(producerOf(it))
	}
	return materialize(kind, it)
}

type zipIterator struct {
	first, second Iterator
	current       Value
}

func (it *zipIterator) HasNext() bool {
	return it.first.HasNext() && it.second.HasNext()
}

func (it *zipIterator) Next() bool {
	// HasNext buffers instead of consuming, so the longer input is never
	// advanced past the end of the shorter one.
	if !it.HasNext() {
		return false
	}
	it.first.Next()
	it.second.Next()
	it.current = NewPair(it.first.Value(), it.second.Value())
	return true
}

func (it *zipIterator) Value() Value {
	return it.current
}

// Coalesce generalizes Zip to n sequences and an n-ary combiner. All inputs
// are consumed lazily and the result is lazy, stopping at the first exhausted
// input.
func Coalesce(combine func(values []Value) Value, sequences ...Sequence) Sequence {
	if len(sequences) == 0 {
		return Empty()
	}

	iterators := make([]Iterator, len(sequences))
	for i, s := range sequences {
		iterators[i] = ToLazy(s).Iterator()
	}

	return Generate(func() (Value, bool) {
		for _, it := range iterators {
			if !it.HasNext() {
				return nil, false
			}
		}
		values := make([]Value, len(iterators))
		for i, it := range iterators {
			it.Next()
			values[i] = it.Value()
		}
		return combine(values), true
	})
}

// Unzip splits a finite sequence of pairs into the sequence of left members
// and the sequence of right members.
func Unzip(s Sequence) (Sequence, Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, nil, err
	}

	var lefts, rights []Value
	it := s.Iterator()
	for it.Next() {
		pair, ok := it.Value().(Pair)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unzip expects a sequence of pairs, got element of type %T", ErrInvalidArgument, it.Value())
		}
		lefts = append(lefts, pair.Left)
		rights = append(rights, pair.Right)
	}

	kind := resolvedKind(s)
	return fromValues(kind, lefts), fromValues(kind, rights), nil
}
