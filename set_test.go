package seqs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sortedInts(t *testing.T, s Sequence) []int {
	t.Helper()
	var ints []int
	it := s.Iterator()
	for it.Next() {
		ints = append(ints, it.Value().(int))
	}
	for i := 0; i < len(ints); i++ {
		for j := i + 1; j < len(ints); j++ {
			if ints[j] < ints[i] {
				ints[i], ints[j] = ints[j], ints[i]
			}
		}
	}
	return ints
}

func TestAdjoin(t *testing.T) {
	t.Parallel()

	t.Run("prepends an absent element", func(t *testing.T) {
		s, err := Adjoin(NewLinked(2, 3), 1, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []Value{1, 2, 3}, elementsOf(s))
	})

	t.Run("returns the input unchanged when present", func(t *testing.T) {
		input := NewIndexed(1, 2, 3)
		s, err := Adjoin(input, 2, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, input, s)
	})

	t.Run("works on every finite representation", func(t *testing.T) {
		for name, build := range finiteConstructors {
			s, err := Adjoin(build(2, 3), 1, EqualityConfiguration{})
			assert.NoError(t, err, name)
			assert.Equal(t, []Value{1, 2, 3}, elementsOf(s), name)
		}
	})

	t.Run("adjoin on empty", func(t *testing.T) {
		s, err := Adjoin(Empty(), 1, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []Value{1}, elementsOf(s))
	})

	t.Run("rune buffer keeps its element kind", func(t *testing.T) {
		s, err := Adjoin(FromString("bc"), 'a', EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, KindRunes, s.Kind())
		assert.Equal(t, "abc", s.(*IndexedSequence).String())
	})

	t.Run("specialized buffer degrades for a foreign element", func(t *testing.T) {
		// A generic indexed sequence accepts any element, whatever buffer
		// happens to back it: only the character buffer may refuse.
		linked, err := Adjoin(NewLinked(1, 2, 3), "x", EqualityConfiguration{})
		assert.NoError(t, err)

		indexed, err := Adjoin(NewIndexed(1, 2, 3), "x", EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, KindIndexed, indexed.Kind())
		assert.Equal(t, elementsOf(linked), elementsOf(indexed))
		assert.Equal(t, []Value{"x", 1, 2, 3}, elementsOf(indexed))

		bools, err := Adjoin(NewIndexed(true, false), 7, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []Value{7, true, false}, elementsOf(bools))
	})

	t.Run("non-rune element refused by a rune buffer", func(t *testing.T) {
		_, err := Adjoin(FromString("bc"), 42, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
	})

	t.Run("lazy input refused", func(t *testing.T) {
		produce, _ := countingProducer()
		_, err := Adjoin(Generate(produce), 1, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnboundedSequence)
	})
}

func TestSetAlgebra(t *testing.T) {
	t.Parallel()

	a := NewIndexed(1, 2, 2, 3)
	b := NewLinked(3, 4)

	t.Run("union", func(t *testing.T) {
		union, err := Union(a, b, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, sortedInts(t, union))
	})

	t.Run("intersection", func(t *testing.T) {
		inter, err := Intersection(a, b, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []int{3}, sortedInts(t, inter))
	})

	t.Run("difference", func(t *testing.T) {
		diff, err := Difference(a, b, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, sortedInts(t, diff))
	})

	t.Run("subset", func(t *testing.T) {
		yes, err := IsSubset(NewLinked(2, 3), a, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.True(t, yes)

		no, err := IsSubset(b, a, EqualityConfiguration{})
		assert.NoError(t, err)
		assert.False(t, no)
	})

	t.Run("lazy operands refused", func(t *testing.T) {
		produce, _ := countingProducer()
		lazy := Generate(produce)

		_, err := Union(lazy, a, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnboundedSequence)
		_, err = Union(a, lazy, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnboundedSequence)
		_, err = Intersection(a, lazy, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnboundedSequence)
		_, err = Difference(a, lazy, EqualityConfiguration{})
		assert.ErrorIs(t, err, ErrUnboundedSequence)
	})
}

func TestUnique(t *testing.T) {
	t.Parallel()

	t.Run("keeps the first occurrence in order", func(t *testing.T) {
		unique, err := Unique(NewLinked(3, 1, 3, 2, 1), EqualityConfiguration{})
		assert.NoError(t, err)
		assert.Equal(t, []Value{3, 1, 2}, elementsOf(unique))
	})

	t.Run("structural equality across boxed values", func(t *testing.T) {
		unique, err := Unique(NewIndexed([]int{1, 2}, []int{1, 2}, []int{3}), EqualityConfiguration{})
		assert.NoError(t, err)

		length, err := Length(unique)
		assert.NoError(t, err)
		assert.Equal(t, 2, length)
	})
}

func TestCustomEquality(t *testing.T) {
	t.Parallel()

	caseInsensitive := EqualityConfiguration{
		Test: func(a, b Value) bool {
			return strings.EqualFold(a.(string), b.(string))
		},
	}

	t.Run("unique with a custom test", func(t *testing.T) {
		unique, err := Unique(NewLinked("Go", "go", "GO", "rust"), caseInsensitive)
		assert.NoError(t, err)
		assert.Equal(t, []Value{"Go", "rust"}, elementsOf(unique))
	})

	t.Run("adjoin with a custom test", func(t *testing.T) {
		input := NewLinked("Go", "rust")
		s, err := Adjoin(input, "GO", caseInsensitive)
		assert.NoError(t, err)
		assert.Equal(t, input, s)
	})

	t.Run("key extraction", func(t *testing.T) {
		byLength := EqualityConfiguration{
			Key: func(v Value) Value { return len(v.(string)) },
		}
		unique, err := Unique(NewLinked("aa", "bb", "c"), byLength)
		assert.NoError(t, err)
		assert.Equal(t, []Value{"aa", "c"}, elementsOf(unique))
	})

	t.Run("position with a key extractor", func(t *testing.T) {
		pairs := NewLinked(NewPair("a", 1), NewPair("b", 2), NewPair("c", 3))
		i, found := Position(pairs, "b", SearchConfiguration{
			EqualityConfiguration: EqualityConfiguration{
				Key: func(v Value) Value { return v.(Pair).Left },
			},
		})
		assert.True(t, found)
		assert.Equal(t, 1, i)
	})
}
