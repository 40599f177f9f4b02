package seqs

// SearchConfiguration bounds and configures a search. Start is the first
// index considered; End, when positive, is the first index no longer
// considered. The zero value searches the whole sequence with the default
// equality.
type SearchConfiguration struct {
	EqualityConfiguration
	Start int
	End   int
}

// Find returns the first element matching target, by the configured equality
// test applied to the element's key. Over a lazy sequence elements are pulled
// until a match or the End bound; an unbounded search over an unbounded input
// may not terminate, which is the caller's responsibility.
func Find(s Sequence, target Value, config SearchConfiguration) (Value, bool) {
	_, v, found := search(s, config, func(v Value) bool {
		return config.match(target, v)
	})
	return v, found
}

// Position returns the index of the first element matching target.
func Position(s Sequence, target Value, config SearchConfiguration) (int, bool) {
	i, _, found := search(s, config, func(v Value) bool {
		return config.match(target, v)
	})
	return i, found
}

// PositionIf returns the index of the first element whose key satisfies pred.
func PositionIf(s Sequence, pred func(Value) bool, config SearchConfiguration) (int, bool) {
	i, _, found := search(s, config, func(v Value) bool {
		return pred(config.key(v))
	})
	return i, found
}

func search(s Sequence, config SearchConfiguration, matches func(Value) bool) (int, Value, bool) {
	it := s.Iterator()
	for i := 0; ; i++ {
		// the bound is checked before pulling so a lazy input is never
		// advanced past End
		if config.End > 0 && i >= config.End {
			break
		}
		if !it.Next() {
			break
		}
		if i < config.Start {
			continue
		}
		if matches(it.Value()) {
			return i, it.Value(), true
		}
	}
	return 0, nil, false
}
