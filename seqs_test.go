package seqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// finiteConstructors builds the same elements in every finite representation;
// most suites run against all of them to check representation transparency.
var finiteConstructors = map[string]func(...Value) Sequence{
	"linked":     NewLinked,
	"indexed":    NewIndexed,
	"persistent": NewPersistent,
}

func elementsOf(s Sequence) []Value {
	return iterateAll(s.Iterator())
}

func lazyOf(elements ...Value) Sequence {
	i := 0
	return Generate(func() (Value, bool) {
		if i >= len(elements) {
			return nil, false
		}
		v := elements[i]
		i++
		return v, true
	})
}

// countingProducer yields 0, 1, 2, ... forever and records how many elements
// were actually produced.
func countingProducer() (Producer, *int) {
	produced := 0
	return func() (Value, bool) {
		v := produced
		produced++
		return v, true
	}, &produced
}

func TestRepresentationTransparency(t *testing.T) {
	t.Parallel()

	elements := []Value{3, 1, 2, 1, 4}

	type result struct {
		name     string
		elements []Value
	}

	apply := func(name string, s Sequence) []result {
		double := func(v Value) Value { return v.(int) * 2 }
		even := func(v Value) bool { return v.(int)%2 == 0 }

		reversed, err := Reverse(s)
		assert.NoError(t, err)
		sorted, err := Sort(s, nil)
		assert.NoError(t, err)
		taken, err := Take(s, 3)
		assert.NoError(t, err)
		dropped, err := Drop(s, 2)
		assert.NoError(t, err)
		unique, err := Unique(s, EqualityConfiguration{})
		assert.NoError(t, err)

		return []result{
			{name + "/map", elementsOf(Map(s, double))},
			{name + "/filter", elementsOf(Filter(s, even))},
			{name + "/reverse", elementsOf(reversed)},
			{name + "/sort", elementsOf(sorted)},
			{name + "/take", elementsOf(taken)},
			{name + "/drop", elementsOf(dropped)},
			{name + "/unique", elementsOf(unique)},
			{name + "/interpose", elementsOf(Interpose(s, 0))},
		}
	}

	var reference []result
	for name, build := range finiteConstructors {
		results := apply(name, build(elements...))
		if reference == nil {
			reference = results
			continue
		}
		for i, res := range results {
			assert.Equal(t, reference[i].elements, res.elements, "%s should match %s", res.name, reference[i].name)
		}
	}
}

func TestPurity(t *testing.T) {
	t.Parallel()

	for name, build := range finiteConstructors {
		t.Run(name, func(t *testing.T) {
			s := build(1, 2, 3)
			before := elementsOf(s)

			Map(s, func(v Value) Value { return v.(int) + 10 })
			Filter(s, func(v Value) bool { return false })
			_, _ = Reverse(s)
			_, _ = Sort(s, nil)
			_, _ = Take(s, 2)
			_, _ = Adjoin(s, 99, EqualityConfiguration{})
			Concat(s, build(4, 5))
			Interleave(s, build(7, 8, 9))

			assert.Equal(t, before, elementsOf(s))
		})
	}
}

func TestCombinedKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, expected Kind
	}{
		{KindEmpty, KindEmpty, KindLinked},
		{KindEmpty, KindLinked, KindLinked},
		{KindEmpty, KindIndexed, KindIndexed},
		{KindEmpty, KindRunes, KindRunes},
		{KindEmpty, KindPersistent, KindPersistent},
		{KindEmpty, KindLazy, KindLazy},
		{KindRunes, KindRunes, KindRunes},
		{KindRunes, KindIndexed, KindIndexed},
		{KindIndexed, KindIndexed, KindIndexed},
		{KindLinked, KindLinked, KindLinked},
		{KindLinked, KindIndexed, KindLinked},
		{KindLinked, KindPersistent, KindLinked},
		{KindIndexed, KindPersistent, KindLinked},
		{KindRunes, KindPersistent, KindLinked},
		{KindPersistent, KindPersistent, KindPersistent},
		{KindLazy, KindLinked, KindLazy},
		{KindLazy, KindPersistent, KindLazy},
		{KindLazy, KindLazy, KindLazy},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, CombinedKind(c.a, c.b), "%s x %s", c.a, c.b)
		assert.Equal(t, c.expected, CombinedKind(c.b, c.a), "%s x %s", c.b, c.a)
	}
}
