package seqs

// Kind is the representation tag of a Sequence. KindRunes is the element-kind
// refinement of KindIndexed for character buffers; the two behave identically
// except in the resolution table below and in rune-only storage checks.
type Kind int

const (
	KindEmpty Kind = iota
	KindLinked
	KindIndexed
	KindRunes
	KindPersistent
	KindLazy
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLinked:
		return "linked"
	case KindIndexed:
		return "indexed"
	case KindRunes:
		return "runes"
	case KindPersistent:
		return "persistent"
	case KindLazy:
		return "lazy"
	}
	return "unknown"
}

func (k Kind) indexed() bool {
	return k == KindIndexed || k == KindRunes
}

// CombinedKind resolves the representation of a sequence derived from inputs
// of kinds a and b, without inspecting elements. It never fails: unknown
// combinations fall back to KindLinked. Single-input operations resolve with
// KindEmpty as the second kind.
//
// Lazy dominates every pairing because only lazy production can represent a
// possibly unbounded result. Persistent survives only when both inputs are
// persistent; mixing an eager input with a persistent one flattens to linked.
func CombinedKind(a, b Kind) Kind {
	switch {
	case a == KindLazy || b == KindLazy:
		return KindLazy
	case a == KindEmpty && b == KindEmpty:
		return KindLinked
	case a == KindEmpty:
		return b
	case b == KindEmpty:
		return a
	case a == KindRunes && b == KindRunes:
		return KindRunes
	case a.indexed() && b.indexed():
		return KindIndexed
	case a == KindPersistent && b == KindPersistent:
		return KindPersistent
	case a == KindPersistent || b == KindPersistent:
		return KindLinked
	case a == b:
		return a
	}
	return KindLinked
}

// resolvedKind is the single-input form of CombinedKind.
func resolvedKind(s Sequence) Kind {
	return CombinedKind(s.Kind(), KindEmpty)
}

// materialize drains it and builds a sequence of the requested finite kind.
// A drained result of zero elements is always the canonical empty sequence.
// KindLazy must not be passed: lazy results are built as producers, never
// materialized.
func materialize(kind Kind, it Iterator) Sequence {
	elements := iterateAll(it)
	return fromValues(kind, elements)
}

// fromValues builds a sequence of the requested kind holding the given
// elements in order.
func fromValues(kind Kind, elements []Value) Sequence {
	if len(elements) == 0 {
		return Empty()
	}

	switch kind {
	case KindIndexed:
		return &IndexedSequence{buf: chooseBuffer(elements)}
	case KindRunes:
		// A rune-kind result whose elements are no longer all runes
		// degrades to a generic buffer.
		if runes, ok := runesOf(elements); ok {
			return &IndexedSequence{buf: &runeBuffer{elements: runes}}
		}
		return &IndexedSequence{buf: &valueBuffer{elements: elements}}
	case KindPersistent:
		return newPersistentFromValues(elements)
	default:
		return newLinkedFromValues(elements)
	}
}
