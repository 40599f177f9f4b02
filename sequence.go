package seqs

var (
	_ = []Sequence{emptySequence{}, (*LinkedSequence)(nil), (*IndexedSequence)(nil), (*PersistentSequence)(nil), (*LazySequence)(nil)}
	_ = []finiteSequence{emptySequence{}, (*LinkedSequence)(nil), (*IndexedSequence)(nil), (*PersistentSequence)(nil)}
)

// Sequence is the closed union over the five representation shapes. Two
// sequences holding the same elements in the same order are indistinguishable
// through the operations of this package, whatever their representation.
// All operations are pure: a Sequence is never mutated after it is returned.
type Sequence interface {
	Kind() Kind
	Iterator() Iterator

	sequence()
}

// finiteSequence is implemented by every representation whose size is known.
// LazySequence is deliberately excluded: its size may be unbounded.
type finiteSequence interface {
	Sequence

	Len() int

	// At panics with ErrIndexOutOfRange if the index is out of bounds.
	At(i int) Value
}

// emptySequence is the canonical empty sequence. It unifies with every other
// representation as the identity element for combination.
type emptySequence struct{}

// Empty returns the canonical empty sequence.
func Empty() Sequence {
	return emptySequence{}
}

func (emptySequence) Kind() Kind { return KindEmpty }

func (emptySequence) Len() int { return 0 }

func (emptySequence) At(i int) Value { panic(ErrIndexOutOfRange) }

func (emptySequence) Iterator() Iterator { return &finiteIterator{seq: emptySequence{}} }

func (emptySequence) sequence() {}

// isEmptySequence reports whether s holds no elements without pulling from a
// lazy producer more than once; the pulled element is unread afterwards.
func isEmptySequence(s Sequence) bool {
	switch seq := s.(type) {
	case finiteSequence:
		return seq.Len() == 0
	case *LazySequence:
		v, ok := seq.pull()
		if ok {
			seq.unread(v)
		}
		return !ok
	}
	return false
}
