package seqs

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// Value is the element type of all sequences. Elements are compared with a
// caller-supplied equality test, never by identity; the default test is
// structural deep equality.
type Value = any

// Pair is the element type of zipped sequences. A table is any sequence of
// pairs with a stable iteration order.
type Pair struct {
	Left  Value
	Right Value
}

func NewPair(left, right Value) Pair {
	return Pair{Left: left, Right: right}
}

// EqualityConfiguration configures how two elements are considered equal.
// The zero value means structural deep equality with no key extraction.
type EqualityConfiguration struct {
	// Test compares the searched-for value (or an element of the first
	// operand) against the key of an element. Nil means deep equality.
	Test func(a, b Value) bool

	// Key extracts the comparison key from an element before Test is
	// applied. Nil means the element itself.
	Key func(v Value) Value
}

func (c EqualityConfiguration) key(v Value) Value {
	if c.Key == nil {
		return v
	}
	return c.Key(v)
}

// match reports whether element matches target: target is compared as-is,
// the element goes through the key extractor first.
func (c EqualityConfiguration) match(target, element Value) bool {
	test := c.Test
	if test == nil {
		test = deepEqual
	}
	return test(target, c.key(element))
}

// equalElements compares two elements, both going through the key extractor.
func (c EqualityConfiguration) equalElements(a, b Value) bool {
	test := c.Test
	if test == nil {
		test = deepEqual
	}
	return test(c.key(a), c.key(b))
}

// isDefault reports whether the configuration carries no custom test nor key,
// which allows representation-key based deduplication.
func (c EqualityConfiguration) isDefault() bool {
	return c.Test == nil && c.Key == nil
}

func deepEqual(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}

// representationKey returns a deduplication key built from the JSON
// representation of v, prefixed with its dynamic type. The boolean is false
// when v has no serializable representation.
func representationKey(v Value) (string, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%T|%s", v, data), true
}

// naturalLess is the documented default ordering: numbers before anything
// else, then strings, then everything else by formatted representation.
func naturalLess(a, b Value) bool {
	af, aNum := asFloat(a)
	bf, bNum := asFloat(b)
	switch {
	case aNum && bNum:
		return af < bf
	case aNum:
		return true
	case bNum:
		return false
	}

	as, aStr := asString(a)
	bs, bStr := asString(b)
	switch {
	case aStr && bStr:
		return as < bs
	case aStr:
		return true
	case bStr:
		return false
	}

	return fmt.Sprint(a) < fmt.Sprint(b)
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case rune:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func asString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
