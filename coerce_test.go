package seqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	finiteKinds := []Kind{KindLinked, KindIndexed, KindPersistent}

	t.Run("preserves order and elements across finite kinds", func(t *testing.T) {
		for name, build := range finiteConstructors {
			source := build(1, 2, 3)
			for _, target := range finiteKinds {
				converted, err := Coerce(target, source)
				assert.NoError(t, err, "%s to %s", name, target)
				assert.Equal(t, target, converted.Kind())
				assert.Equal(t, []Value{1, 2, 3}, elementsOf(converted))
			}
		}
	})

	t.Run("idempotent at the target kind", func(t *testing.T) {
		source := NewLinked(1, 2, 3)
		once, err := Coerce(KindPersistent, source)
		assert.NoError(t, err)

		twice, err := Coerce(KindPersistent, once)
		assert.NoError(t, err)
		assert.Same(t, once.(*PersistentSequence), twice.(*PersistentSequence))
	})

	t.Run("string and rune buffer round trip", func(t *testing.T) {
		runes, err := Coerce(KindRunes, NewLinked('h', 'i'))
		assert.NoError(t, err)
		assert.Equal(t, "hi", runes.(*IndexedSequence).String())

		back, err := Coerce(KindLinked, runes)
		assert.NoError(t, err)
		assert.Equal(t, []Value{'h', 'i'}, elementsOf(back))
	})

	t.Run("non-character elements cannot enter a rune buffer", func(t *testing.T) {
		_, err := Coerce(KindRunes, NewLinked(1, 2))
		assert.ErrorIs(t, err, ErrUnconvertibleType)
	})

	t.Run("bounded lazy sequence materializes", func(t *testing.T) {
		converted, err := Coerce(KindLinked, lazyOf(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, KindLinked, converted.Kind())
		assert.Equal(t, []Value{1, 2, 3}, elementsOf(converted))
	})

	t.Run("any sequence coerces to lazy", func(t *testing.T) {
		lazy, err := Coerce(KindLazy, NewIndexed(1, 2))
		assert.NoError(t, err)
		assert.Equal(t, KindLazy, lazy.Kind())
		assert.Equal(t, []Value{1, 2}, elementsOf(lazy))
	})

	t.Run("raw values convert through the collaborator", func(t *testing.T) {
		fromRaw, err := Coerce(KindLinked, Value("abc"))
		assert.NoError(t, err)
		assert.Equal(t, []Value{'a', 'b', 'c'}, elementsOf(fromRaw))

		_, err = Coerce(KindLinked, 42)
		assert.ErrorIs(t, err, ErrUnconvertibleType)
	})

	t.Run("non-empty sequence cannot become the empty representation", func(t *testing.T) {
		_, err := Coerce(KindEmpty, NewLinked(1))
		assert.ErrorIs(t, err, ErrUnconvertibleType)

		empty, err := Coerce(KindEmpty, Filter(NewLinked(1), func(Value) bool { return false }))
		assert.NoError(t, err)
		assert.Equal(t, KindEmpty, empty.Kind())
	})
}
