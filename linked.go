package seqs

// LinkedSequence is a non-empty chain of cons cells. Prepending is O(1) and
// shares the tail; indexing and appending are O(n). The empty chain is not a
// LinkedSequence, it is the canonical empty sequence.
type LinkedSequence struct {
	head Value
	tail *LinkedSequence // nil at the last cell
	size int
}

// NewLinked builds a linked sequence from the given elements.
func NewLinked(elements ...Value) Sequence {
	return newLinkedFromValues(elements)
}

func newLinkedFromValues(elements []Value) Sequence {
	if len(elements) == 0 {
		return Empty()
	}
	var tail *LinkedSequence
	for i := len(elements) - 1; i >= 0; i-- {
		tail = &LinkedSequence{head: elements[i], tail: tail, size: len(elements) - i}
	}
	return tail
}

// cons prepends v, sharing the receiver as the tail.
func (s *LinkedSequence) cons(v Value) *LinkedSequence {
	return &LinkedSequence{head: v, tail: s, size: s.size + 1}
}

func (s *LinkedSequence) Kind() Kind { return KindLinked }

func (s *LinkedSequence) Len() int { return s.size }

func (s *LinkedSequence) At(i int) Value {
	if i < 0 || i >= s.size {
		panic(ErrIndexOutOfRange)
	}
	node := s
	for ; i > 0; i-- {
		node = node.tail
	}
	return node.head
}

// suffix returns the chain starting at index i, sharing structure. i must be
// in [0, size]; suffix(size) is nil.
func (s *LinkedSequence) suffix(i int) *LinkedSequence {
	node := s
	for ; i > 0; i-- {
		node = node.tail
	}
	return node
}

func (s *LinkedSequence) Iterator() Iterator {
	return &linkedIterator{node: s}
}

func (s *LinkedSequence) sequence() {}
