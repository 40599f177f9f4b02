package seqs

import (
	"github.com/tidwall/btree"
)

// persistentStride is the gap between the positions of adjacent elements,
// leaving room to prepend and concatenate without rewriting existing nodes.
const persistentStride int64 = 1 << 16

type persistentItem struct {
	pos   int64
	value Value
}

// PersistentSequence is an immutable tree-backed sequence. The tree maps a
// sparse position to each element; derived sequences start from a
// copy-on-write snapshot of the source tree, so unchanged subtrees are shared
// and access, update and prepend stay logarithmic.
type PersistentSequence struct {
	tree *btree.BTreeG[persistentItem]
}

// NewPersistent builds a persistent sequence from the given elements.
func NewPersistent(elements ...Value) Sequence {
	return newPersistentFromValues(elements)
}

func newPersistentTree() *btree.BTreeG[persistentItem] {
	return btree.NewBTreeG(func(a, b persistentItem) bool {
		return a.pos < b.pos
	})
}

func newPersistentFromValues(elements []Value) Sequence {
	if len(elements) == 0 {
		return Empty()
	}
	tree := newPersistentTree()
	for i, e := range elements {
		tree.Set(persistentItem{pos: int64(i) * persistentStride, value: e})
	}
	return &PersistentSequence{tree: tree}
}

func (s *PersistentSequence) Kind() Kind { return KindPersistent }

func (s *PersistentSequence) Len() int { return s.tree.Len() }

func (s *PersistentSequence) At(i int) Value {
	item, ok := s.tree.GetAt(i)
	if !ok {
		panic(ErrIndexOutOfRange)
	}
	return item.value
}

func (s *PersistentSequence) Iterator() Iterator {
	return &finiteIterator{seq: s}
}

func (s *PersistentSequence) sequence() {}

// prepend returns a new sequence sharing the whole receiver tree.
func (s *PersistentSequence) prepend(v Value) *PersistentSequence {
	lowest, _ := s.tree.Min()
	shared := s.tree.Copy()
	shared.Set(persistentItem{pos: lowest.pos - persistentStride, value: v})
	return &PersistentSequence{tree: shared}
}

// concatPersistent appends b's elements after a's, sharing a's tree.
func concatPersistent(a, b *PersistentSequence) *PersistentSequence {
	highest, _ := a.tree.Max()
	shared := a.tree.Copy()
	next := highest.pos + persistentStride
	b.tree.Scan(func(item persistentItem) bool {
		shared.Set(persistentItem{pos: next, value: item.value})
		next += persistentStride
		return true
	})
	return &PersistentSequence{tree: shared}
}

// subrange extracts the half-open range [start, end), end > start.
func (s *PersistentSequence) subrange(start, end int) Sequence {
	tree := newPersistentTree()
	for i := start; i < end; i++ {
		item, _ := s.tree.GetAt(i)
		tree.Set(persistentItem{pos: int64(i-start) * persistentStride, value: item.value})
	}
	return &PersistentSequence{tree: tree}
}
