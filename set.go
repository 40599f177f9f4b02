package seqs

import "fmt"

// Set algebra. A set is any sequence whose elements are pairwise distinct
// under the active equality; these operations accept any finite
// representation as input and produce output satisfying that contract. The
// element order of Union, Intersection and Difference results is
// unspecified; only Adjoin (prepend) and Unique (first occurrence) guarantee
// an order. All of them exhaust their inputs, so lazy inputs are refused.
//
// With the default equality, membership is tracked by representation key,
// the serialized form of an element; a custom test or key falls back to
// pairwise comparison.

// Adjoin prepends v unless an element equal to it is already present, in
// which case the input is returned unchanged.
func Adjoin(s Sequence, v Value, config EqualityConfiguration) (Sequence, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}

	it := seq.Iterator()
	for it.Next() {
		if config.match(v, it.Value()) {
			return s, nil
		}
	}

	switch rep := seq.(type) {
	case emptySequence:
		return NewLinked(v), nil
	case *LinkedSequence:
		return rep.cons(v), nil
	case *IndexedSequence:
		if rep.buf.canStore(v) {
			return &IndexedSequence{buf: rep.buf.prepended(v)}, nil
		}
		if rep.Kind() == KindRunes {
			return nil, fmt.Errorf("%w: cannot adjoin a %T to a character sequence", ErrUnsupportedOperation, v)
		}
		// A specialized buffer that cannot hold v degrades to a generic
		// one, like fromValues does for rune-kind results.
		elements := make([]Value, 0, rep.Len()+1)
		elements = append(elements, v)
		elements = append(elements, iterateAll(rep.Iterator())...)
		return &IndexedSequence{buf: &valueBuffer{elements: elements}}, nil
	case *PersistentSequence:
		return rep.prepend(v), nil
	}
	return nil, ErrUnsupportedOperation
}

// Union returns the set union of a and b, each element once.
func Union(a, b Sequence, config EqualityConfiguration) (Sequence, error) {
	if _, err := requireFinite(a); err != nil {
		return nil, err
	}
	if _, err := requireFinite(b); err != nil {
		return nil, err
	}

	elements := iterateAll(a.Iterator())
	elements = append(elements, iterateAll(b.Iterator())...)
	return fromValues(CombinedKind(a.Kind(), b.Kind()), dedupe(elements, config)), nil
}

// Intersection returns the elements present in both a and b, each once.
func Intersection(a, b Sequence, config EqualityConfiguration) (Sequence, error) {
	if _, err := requireFinite(a); err != nil {
		return nil, err
	}
	inB, err := newMembership(b, config)
	if err != nil {
		return nil, err
	}

	var elements []Value
	it := a.Iterator()
	for it.Next() {
		if inB.contains(it.Value()) {
			elements = append(elements, it.Value())
		}
	}
	return fromValues(CombinedKind(a.Kind(), b.Kind()), dedupe(elements, config)), nil
}

// Difference returns the elements of a absent from b, each once.
func Difference(a, b Sequence, config EqualityConfiguration) (Sequence, error) {
	if _, err := requireFinite(a); err != nil {
		return nil, err
	}
	inB, err := newMembership(b, config)
	if err != nil {
		return nil, err
	}

	var elements []Value
	it := a.Iterator()
	for it.Next() {
		if !inB.contains(it.Value()) {
			elements = append(elements, it.Value())
		}
	}
	return fromValues(CombinedKind(a.Kind(), b.Kind()), dedupe(elements, config)), nil
}

// Unique removes duplicate elements, keeping the first occurrence of each
// and preserving their order. The result keeps the input's representation.
func Unique(s Sequence, config EqualityConfiguration) (Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}
	return fromValues(resolvedKind(s), dedupe(iterateAll(s.Iterator()), config)), nil
}

// IsSubset reports whether every element of a is present in b.
func IsSubset(a, b Sequence, config EqualityConfiguration) (bool, error) {
	if _, err := requireFinite(a); err != nil {
		return false, err
	}
	inB, err := newMembership(b, config)
	if err != nil {
		return false, err
	}

	it := a.Iterator()
	for it.Next() {
		if !inB.contains(it.Value()) {
			return false, nil
		}
	}
	return true, nil
}

func dedupe(elements []Value, config EqualityConfiguration) []Value {
	kept := make([]Value, 0, len(elements))

	if config.isDefault() {
		seen := make(map[string]struct{}, len(elements))
		for _, e := range elements {
			key, ok := representationKey(e)
			if !ok {
				// unserializable element, compare pairwise
				if !containsPairwise(kept, e, config) {
					kept = append(kept, e)
				}
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, e)
		}
		return kept
	}

	for _, e := range elements {
		if !containsPairwise(kept, e, config) {
			kept = append(kept, e)
		}
	}
	return kept
}

func containsPairwise(elements []Value, v Value, config EqualityConfiguration) bool {
	for _, e := range elements {
		if config.equalElements(e, v) {
			return true
		}
	}
	return false
}

// membership answers containment queries against a finite sequence, using
// representation keys under the default equality and pairwise comparison
// otherwise.
type membership struct {
	config   EqualityConfiguration
	keys     map[string]struct{}
	elements []Value // elements without a representation key, or all of them
}

func newMembership(s Sequence, config EqualityConfiguration) (*membership, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}

	m := &membership{config: config}
	all := iterateAll(s.Iterator())
	if !config.isDefault() {
		m.elements = all
		return m, nil
	}

	m.keys = make(map[string]struct{}, len(all))
	for _, e := range all {
		key, ok := representationKey(e)
		if !ok {
			m.elements = append(m.elements, e)
			continue
		}
		m.keys[key] = struct{}{}
	}
	return m, nil
}

func (m *membership) contains(v Value) bool {
	if m.keys != nil {
		if key, ok := representationKey(v); ok {
			if _, present := m.keys[key]; present {
				return true
			}
		}
	}
	return containsPairwise(m.elements, v, m.config)
}
