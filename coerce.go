package seqs

import "fmt"

// A Converter turns a value into a sequence of the requested representation.
// The package treats it as an opaque collaborator: it either produces a
// Sequence or fails with ErrUnconvertibleType.
type Converter interface {
	ConvertValue(target Kind, v Value) (Sequence, error)
}

var converter Converter = defaultConverter{}

// CoerceWith converts v with an explicit converter.
func CoerceWith(c Converter, target Kind, v Value) (Sequence, error) {
	return c.ConvertValue(target, v)
}

// Coerce converts a value to a sequence of the target representation,
// preserving order and element identity. Besides sequences, the default
// converter accepts strings and element slices. Coercing is idempotent once
// at the target kind: a sequence already of the target kind is returned
// unchanged. Coercing a lazy sequence to a finite kind materializes it and
// therefore requires production to terminate; an unbounded input must be
// bounded first, e.g. with Take.
func Coerce(target Kind, v Value) (Sequence, error) {
	return converter.ConvertValue(target, v)
}

type defaultConverter struct{}

func (defaultConverter) ConvertValue(target Kind, v Value) (Sequence, error) {
	seq, ok := v.(Sequence)
	if !ok {
		switch src := v.(type) {
		case []Value:
			seq = NewIndexed(src...)
		case string:
			seq = FromString(src)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnconvertibleType, v)
		}
	}

	if seq.Kind() == target {
		return seq, nil
	}

	switch target {
	case KindLazy:
		return ToLazy(seq), nil
	case KindEmpty:
		if !isEmptySequence(seq) {
			return nil, fmt.Errorf("%w: non-empty sequence cannot become the empty representation", ErrUnconvertibleType)
		}
		return Empty(), nil
	case KindLinked, KindIndexed, KindRunes, KindPersistent:
		elements := iterateAll(seq.Iterator())
		logger.Trace().
			Str("from", seq.Kind().String()).
			Str("to", target.String()).
			Int("elements", len(elements)).
			Msg("materialized sequence for coercion")
		if target == KindRunes {
			if _, ok := runesOf(elements); !ok && len(elements) > 0 {
				return nil, fmt.Errorf("%w: non-character element cannot enter a character buffer", ErrUnconvertibleType)
			}
		}
		return fromValues(target, elements), nil
	}

	return nil, fmt.Errorf("%w: unknown target representation %d", ErrUnconvertibleType, int(target))
}
