package seqs

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"github.com/polyseq/seqs/internal/utils"
)

var (
	_ = []indexedBuffer{(*valueBuffer)(nil), (*runeBuffer)(nil), (*numberBuffer[int])(nil), (*boolBuffer)(nil)}
)

// IndexedSequence is a finite random-access sequence. The elements are stored
// in an indexedBuffer suited to their kind: a contiguous rune buffer when all
// elements are runes, a numeric or bit-packed buffer for homogeneous numbers
// or booleans, and a generic boxed buffer otherwise. Every operation copies;
// the buffer backing an input is never written to.
type IndexedSequence struct {
	buf indexedBuffer
}

type indexedBuffer interface {
	Len() int
	At(i int) Value

	// elemKind is KindRunes for the character buffer, KindIndexed otherwise.
	elemKind() Kind

	// canStore reports whether v can be held without degrading the buffer
	// to a generic one.
	canStore(v Value) bool

	// slice copies the half-open range [start, end) into a fresh buffer.
	slice(start, end int) indexedBuffer

	// prepended returns a fresh buffer holding v followed by the current
	// elements. The caller must have checked canStore.
	prepended(v Value) indexedBuffer
}

// NewIndexed builds an indexed sequence, picking the most specialized buffer
// able to hold the elements.
func NewIndexed(elements ...Value) Sequence {
	if len(elements) == 0 {
		return Empty()
	}
	return &IndexedSequence{buf: chooseBuffer(elements)}
}

// FromString builds a rune-buffer sequence from the characters of str.
func FromString(str string) Sequence {
	if str == "" {
		return Empty()
	}
	return &IndexedSequence{buf: &runeBuffer{elements: []rune(str)}}
}

// FromRunes builds a rune-buffer sequence from a copy of runes.
func FromRunes(runes []rune) Sequence {
	if len(runes) == 0 {
		return Empty()
	}
	return &IndexedSequence{buf: &runeBuffer{elements: utils.CopySlice(runes)}}
}

// FromSlice builds an indexed sequence backed by a copy of elements.
func FromSlice(elements []Value) Sequence {
	return NewIndexed(elements...)
}

func (s *IndexedSequence) Kind() Kind { return s.buf.elemKind() }

func (s *IndexedSequence) Len() int { return s.buf.Len() }

func (s *IndexedSequence) At(i int) Value {
	if i < 0 || i >= s.buf.Len() {
		panic(ErrIndexOutOfRange)
	}
	return s.buf.At(i)
}

func (s *IndexedSequence) Iterator() Iterator {
	return &finiteIterator{seq: s}
}

func (s *IndexedSequence) sequence() {}

// String rebuilds the string of a rune-buffer sequence; other buffers
// return the empty string.
func (s *IndexedSequence) String() string {
	rb, ok := s.buf.(*runeBuffer)
	if !ok {
		return ""
	}
	return string(rb.elements)
}

// chooseBuffer picks the buffer representation suited to the elements.
func chooseBuffer(elements []Value) indexedBuffer {
	runes, ints, floats, bools := 0, 0, 0, 0
	for _, e := range elements {
		switch e.(type) {
		case rune:
			runes++
		case int:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		}
	}

	count := len(elements)
	switch count {
	case runes:
		rs := make([]rune, count)
		for i, e := range elements {
			rs[i] = e.(rune)
		}
		return &runeBuffer{elements: rs}
	case ints:
		return newNumberBuffer[int](elements)
	case floats:
		return newNumberBuffer[float64](elements)
	case bools:
		bits := bitset.New(uint(count))
		for i, e := range elements {
			bits.SetTo(uint(i), e.(bool))
		}
		return &boolBuffer{bits: bits, length: count}
	}

	return &valueBuffer{elements: utils.CopySlice(elements)}
}

// runesOf converts elements to runes if they all are runes.
func runesOf(elements []Value) ([]rune, bool) {
	runes := make([]rune, len(elements))
	for i, e := range elements {
		r, ok := e.(rune)
		if !ok {
			return nil, false
		}
		runes[i] = r
	}
	return runes, true
}

// valueBuffer holds boxed elements of any kind.
type valueBuffer struct {
	elements []Value
}

func (b *valueBuffer) Len() int { return len(b.elements) }

func (b *valueBuffer) At(i int) Value { return b.elements[i] }

func (b *valueBuffer) elemKind() Kind { return KindIndexed }

func (b *valueBuffer) canStore(Value) bool { return true }

func (b *valueBuffer) slice(start, end int) indexedBuffer {
	return &valueBuffer{elements: utils.CopySlice(b.elements[start:end])}
}

func (b *valueBuffer) prepended(v Value) indexedBuffer {
	elements := make([]Value, 0, len(b.elements)+1)
	elements = append(elements, v)
	elements = append(elements, b.elements...)
	return &valueBuffer{elements: elements}
}

// runeBuffer is the specialized character buffer.
type runeBuffer struct {
	elements []rune
}

func (b *runeBuffer) Len() int { return len(b.elements) }

func (b *runeBuffer) At(i int) Value { return b.elements[i] }

func (b *runeBuffer) elemKind() Kind { return KindRunes }

func (b *runeBuffer) canStore(v Value) bool {
	_, ok := v.(rune)
	return ok
}

func (b *runeBuffer) slice(start, end int) indexedBuffer {
	return &runeBuffer{elements: utils.CopySlice(b.elements[start:end])}
}

func (b *runeBuffer) prepended(v Value) indexedBuffer {
	elements := make([]rune, 0, len(b.elements)+1)
	elements = append(elements, v.(rune))
	elements = append(elements, b.elements...)
	return &runeBuffer{elements: elements}
}

// numberBuffer holds homogeneous numeric elements unboxed.
type numberBuffer[T interface {
	constraints.Integer | constraints.Float
}] struct {
	elements []T
}

func newNumberBuffer[T interface {
	constraints.Integer | constraints.Float
}](elements []Value) *numberBuffer[T] {
	ns := make([]T, len(elements))
	for i, e := range elements {
		ns[i] = e.(T)
	}
	return &numberBuffer[T]{elements: ns}
}

func (b *numberBuffer[T]) Len() int { return len(b.elements) }

func (b *numberBuffer[T]) At(i int) Value { return b.elements[i] }

func (b *numberBuffer[T]) elemKind() Kind { return KindIndexed }

func (b *numberBuffer[T]) canStore(v Value) bool {
	_, ok := v.(T)
	return ok
}

func (b *numberBuffer[T]) slice(start, end int) indexedBuffer {
	return &numberBuffer[T]{elements: utils.CopySlice(b.elements[start:end])}
}

func (b *numberBuffer[T]) prepended(v Value) indexedBuffer {
	elements := make([]T, 0, len(b.elements)+1)
	elements = append(elements, v.(T))
	elements = append(elements, b.elements...)
	return &numberBuffer[T]{elements: elements}
}

// boolBuffer packs boolean elements into a bitset.
type boolBuffer struct {
	bits   *bitset.BitSet
	length int
}

func (b *boolBuffer) Len() int { return b.length }

func (b *boolBuffer) At(i int) Value { return b.bits.Test(uint(i)) }

func (b *boolBuffer) elemKind() Kind { return KindIndexed }

func (b *boolBuffer) canStore(v Value) bool {
	_, ok := v.(bool)
	return ok
}

func (b *boolBuffer) slice(start, end int) indexedBuffer {
	bits := bitset.New(uint(end - start))
	for i := start; i < end; i++ {
		bits.SetTo(uint(i-start), b.bits.Test(uint(i)))
	}
	return &boolBuffer{bits: bits, length: end - start}
}

func (b *boolBuffer) prepended(v Value) indexedBuffer {
	bits := bitset.New(uint(b.length + 1))
	bits.SetTo(0, v.(bool))
	for i := 0; i < b.length; i++ {
		bits.SetTo(uint(i+1), b.bits.Test(uint(i)))
	}
	return &boolBuffer{bits: bits, length: b.length + 1}
}
