package seqs

// A Producer is a pull-based element source: each call produces the next
// element, left to right, or reports exhaustion. Production is synchronous
// and caller-paced; no element past the last one requested is ever computed.
// A producer must not be pulled concurrently from two goroutines.
type Producer func() (Value, bool)

// LazySequence is an ordered sequence produced on demand. Its size is
// unknown at construction and may be infinite: finiteness-dependent
// operations refuse it with ErrUnboundedSequence. It is single-pass: once an
// element has been consumed it is not re-derivable from the same handle.
type LazySequence struct {
	produce Producer
	pending []Value // pulled but not yet consumed, in order
	done    bool
}

// Generate wraps a producer as a lazy sequence.
func Generate(produce Producer) Sequence {
	return &LazySequence{produce: produce}
}

// ToLazy wraps any sequence as a lazy one. A finite input is not copied: its
// elements are produced on demand through an iterator.
func ToLazy(s Sequence) Sequence {
	if lazy, ok := s.(*LazySequence); ok {
		return lazy
	}
	it := s.Iterator()
	return Generate(func() (Value, bool) {
		if !it.Next() {
			return nil, false
		}
		return it.Value(), true
	})
}

func (s *LazySequence) Kind() Kind { return KindLazy }

func (s *LazySequence) Iterator() Iterator {
	return &lazyIterator{seq: s}
}

func (s *LazySequence) sequence() {}

// pull produces the next element, consuming any unread element first.
func (s *LazySequence) pull() (Value, bool) {
	if len(s.pending) > 0 {
		v := s.pending[0]
		s.pending = s.pending[1:]
		return v, true
	}
	if s.done || s.produce == nil {
		return nil, false
	}
	v, ok := s.produce()
	if !ok {
		s.done = true
		return nil, false
	}
	return v, true
}

// unread pushes a pulled element back so the next pull returns it again.
func (s *LazySequence) unread(v Value) {
	s.pending = append([]Value{v}, s.pending...)
}
