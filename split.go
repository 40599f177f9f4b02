package seqs

import (
	"fmt"

	aq "github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/polyseq/seqs/internal/utils"
)

// Take returns the first n elements, n >= 1. On a finite sequence a count
// beyond the length is out of range. On a lazy sequence Take is the bounding
// step: exactly n elements are pulled and the result is a finite sequence,
// failing only if production ends before n elements.
func Take(s Sequence, n int) (Sequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: take count must be positive, got %d", ErrInvalidArgument, n)
	}

	if s.Kind() == KindLazy {
		elements := make([]Value, 0, n)
		it := s.Iterator()
		for len(elements) < n && it.Next() {
			elements = append(elements, it.Value())
		}
		if len(elements) < n {
			return nil, fmt.Errorf("%w: take count %d, only %d elements produced", ErrIndexOutOfRange, n, len(elements))
		}
		return fromValues(KindIndexed, elements), nil
	}

	return Subsequence(s, 0, n)
}

// Drop returns all but the first n elements, n >= 1. On a lazy sequence the
// result stays lazy: the n skipped elements are only pulled when the result
// is first consumed.
func Drop(s Sequence, n int) (Sequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: drop count must be positive, got %d", ErrInvalidArgument, n)
	}

	if s.Kind() == KindLazy {
		it := s.Iterator()
		skipped := false
		return Generate(func() (Value, bool) {
			if !skipped {
				skipped = true
				for i := 0; i < n; i++ {
					if !it.Next() {
						return nil, false
					}
				}
			}
			if !it.Next() {
				return nil, false
			}
			return it.Value(), true
		}), nil
	}

	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}
	return Subsequence(seq, n, seq.Len())
}

// TakeWhile returns the longest prefix whose elements all satisfy pred. Over
// a lazy sequence the result is lazy and the first failing element is unread,
// so it stays available on the input handle.
func TakeWhile(s Sequence, pred func(Value) bool) Sequence {
	if lazy, ok := s.(*LazySequence); ok {
		stopped := false
		return Generate(func() (Value, bool) {
			if stopped {
				return nil, false
			}
			v, ok := lazy.pull()
			if !ok {
				return nil, false
			}
			if !pred(v) {
				lazy.unread(v)
				stopped = true
				return nil, false
			}
			return v, true
		})
	}

	it := s.Iterator()
	var elements []Value
	for it.Next() {
		if !pred(it.Value()) {
			break
		}
		elements = append(elements, it.Value())
	}
	return fromValues(resolvedKind(s), elements)
}

// DropWhile removes the longest prefix whose elements all satisfy pred.
func DropWhile(s Sequence, pred func(Value) bool) Sequence {
	if s.Kind() == KindLazy {
		it := s.Iterator()
		dropped := false
		return Generate(func() (Value, bool) {
			if !dropped {
				dropped = true
				for it.Next() {
					if !pred(it.Value()) {
						return it.Value(), true
					}
				}
				return nil, false
			}
			if !it.Next() {
				return nil, false
			}
			return it.Value(), true
		})
	}

	seq, _ := requireFinite(s)
	i := 0
	for ; i < seq.Len(); i++ {
		if !pred(seq.At(i)) {
			break
		}
	}
	if i == seq.Len() {
		return Empty()
	}
	sub, _ := Subsequence(seq, i, seq.Len())
	return sub
}

// By chunks the sequence into groups of n elements, n >= 1, with a final
// undersized group when the length does not divide evenly. Concatenating the
// groups in order reconstructs the input.
func By(s Sequence, n int) (Sequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidArgument, n)
	}
	return TakeBy(s, n, n)
}

// TakeBy produces windows of n elements taken every advance elements, both
// >= 1. An advance smaller than n yields overlapping windows; a larger one
// skips elements between windows. When a window start lands before the end
// but fewer than n elements remain, exactly one final partial window is
// produced; a start past the end produces none. Over a lazy input the outer
// sequence is lazy; the windows themselves are always finite indexed
// sequences.
func TakeBy(s Sequence, n, advance int) (Sequence, error) {
	if n < 1 || advance < 1 {
		return nil, fmt.Errorf("%w: window size and advance must be positive, got %d and %d", ErrInvalidArgument, n, advance)
	}

	produce := windowProducer(s.Iterator(), n, advance)
	if s.Kind() == KindLazy {
		return Generate(produce), nil
	}

	var windows []Value
	for {
		w, ok := produce()
		if !ok {
			break
		}
		windows = append(windows, w)
	}
	return fromValues(resolvedKind(s), windows), nil
}

// windowProducer yields successive windows over it, buffering the current
// window in a queue so overlapping windows re-deliver buffered elements.
func windowProducer(it Iterator, n, advance int) Producer {
	window := aq.New()
	done := false

	return func() (Value, bool) {
		if done {
			return nil, false
		}
		for window.Size() < n && it.Next() {
			window.Enqueue(it.Value())
		}
		if window.Size() == 0 {
			done = true
			return nil, false
		}

		buffered := window.Values()
		elements := make([]Value, len(buffered))
		copy(elements, buffered)

		if window.Size() < n {
			// final partial window
			done = true
		} else {
			for i := 0; i < advance && !window.Empty(); i++ {
				window.Dequeue()
			}
			for skip := advance - n; skip > 0; skip-- {
				if !it.Next() {
					done = true
					break
				}
			}
		}
		return NewIndexed(elements...), true
	}
}

// Split breaks the sequence at every non-overlapping occurrence of the
// separator subsequence, scanning strictly left to right; the separator
// itself is dropped from the output. An empty or nil separator splits into
// one single-element group per input element. Splitting an empty sequence
// yields a single empty group, so joining with the same separator is the
// exact inverse whenever the separator does not occur inside the pieces.
func Split(s Sequence, separator Sequence, config EqualityConfiguration) (Sequence, error) {
	groupKind := resolvedKind(s)
	if s.Kind() == KindLazy {
		groupKind = KindIndexed
	}

	if separator == nil || isEmptySequence(separator) {
		singleton := func(v Value) Value { return fromValues(groupKind, []Value{v}) }
		if lazy, ok := s.(*LazySequence); ok {
			return Generate(func() (Value, bool) {
				v, ok := lazy.pull()
				if !ok {
					return nil, false
				}
				return singleton(v), true
			}), nil
		}
		groups := utils.MapSlice(iterateAll(s.Iterator()), singleton)
		return fromValues(resolvedKind(s), groups), nil
	}

	scanner := &splitScanner{
		it:     s.Iterator(),
		sep:    iterateAll(reusable(separator).Iterator()),
		config: config,
	}

	if s.Kind() == KindLazy {
		return Generate(func() (Value, bool) {
			group, ok := scanner.next()
			if !ok {
				return nil, false
			}
			return fromValues(groupKind, group), true
		}), nil
	}

	var groups []Value
	for {
		group, ok := scanner.next()
		if !ok {
			break
		}
		groups = append(groups, fromValues(groupKind, group))
	}
	return fromValues(resolvedKind(s), groups), nil
}

// splitScanner scans for separator occurrences. Elements that matched a
// separator prefix before a mismatch are re-scanned, so matching needs no
// lookahead beyond the separator length.
type splitScanner struct {
	it      Iterator
	sep     []Value
	config  EqualityConfiguration
	pending []Value
	done    bool
}

func (sc *splitScanner) read() (Value, bool) {
	if len(sc.pending) > 0 {
		v := sc.pending[0]
		sc.pending = sc.pending[1:]
		return v, true
	}
	if !sc.it.Next() {
		return nil, false
	}
	return sc.it.Value(), true
}

func (sc *splitScanner) next() ([]Value, bool) {
	if sc.done {
		return nil, false
	}

	group := []Value{}
	var candidate []Value // input elements matching a strict prefix of sep

	for {
		v, ok := sc.read()
		if !ok {
			sc.done = true
			return append(group, candidate...), true
		}

		if sc.config.equalElements(sc.sep[len(candidate)], v) {
			candidate = append(candidate, v)
			if len(candidate) == len(sc.sep) {
				return group, true
			}
			continue
		}

		if len(candidate) > 0 {
			group = append(group, candidate[0])
			rescan := append(utils.CopySlice(candidate[1:]), v)
			sc.pending = append(rescan, sc.pending...)
			candidate = nil
			continue
		}
		group = append(group, v)
	}
}

// Partition applies each of the given functions to every element, producing
// one derived sequence per function. The input is iterated once, so it must
// be finite: a lazy handle is single-pass and cannot back several outputs.
func Partition(s Sequence, fns ...func(Value) Value) ([]Sequence, error) {
	if _, err := requireFinite(s); err != nil {
		return nil, err
	}

	outputs := make([][]Value, len(fns))
	it := s.Iterator()
	for it.Next() {
		for i, fn := range fns {
			outputs[i] = append(outputs[i], fn(it.Value()))
		}
	}

	kind := resolvedKind(s)
	results := make([]Sequence, len(fns))
	for i, out := range outputs {
		results[i] = fromValues(kind, out)
	}
	return results, nil
}

// Tails returns all non-empty suffixes, from the whole sequence down to its
// last single element. Linked suffixes share their cells with the input.
func Tails(s Sequence) (Sequence, error) {
	seq, err := requireFinite(s)
	if err != nil {
		return nil, err
	}

	length := seq.Len()
	if length == 0 {
		return Empty(), nil
	}

	suffixes := make([]Value, length)
	if linked, ok := seq.(*LinkedSequence); ok {
		for i := 0; i < length; i++ {
			suffixes[i] = linked.suffix(i)
		}
	} else {
		for i := 0; i < length; i++ {
			sub, err := Subsequence(seq, i, length)
			if err != nil {
				return nil, err
			}
			suffixes[i] = sub
		}
	}
	return fromValues(resolvedKind(s), suffixes), nil
}

// Subsequence extracts the half-open range [start, end). On a finite
// sequence the bounds must satisfy 0 <= start <= end <= length. On a lazy
// sequence the range bounds the producer, like Take: the result is finite
// and production must reach end elements.
func Subsequence(s Sequence, start, end int) (Sequence, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: range [%d, %d)", ErrIndexOutOfRange, start, end)
	}

	if s.Kind() == KindLazy {
		it := s.Iterator()
		for i := 0; i < start; i++ {
			if !it.Next() {
				return nil, fmt.Errorf("%w: range [%d, %d), production ended at %d", ErrIndexOutOfRange, start, end, i)
			}
		}
		elements := make([]Value, 0, end-start)
		for i := start; i < end; i++ {
			if !it.Next() {
				return nil, fmt.Errorf("%w: range [%d, %d), production ended at %d", ErrIndexOutOfRange, start, end, i)
			}
			elements = append(elements, it.Value())
		}
		return fromValues(KindIndexed, elements), nil
	}

	seq, _ := requireFinite(s)
	if end > seq.Len() {
		return nil, fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfRange, start, end, seq.Len())
	}
	if start == end {
		return Empty(), nil
	}

	switch rep := seq.(type) {
	case *LinkedSequence:
		if end == rep.size {
			return rep.suffix(start), nil
		}
		elements := make([]Value, 0, end-start)
		node := rep.suffix(start)
		for i := start; i < end; i++ {
			elements = append(elements, node.head)
			node = node.tail
		}
		return newLinkedFromValues(elements), nil
	case *IndexedSequence:
		return &IndexedSequence{buf: rep.buf.slice(start, end)}, nil
	case *PersistentSequence:
		return rep.subrange(start, end), nil
	}
	return nil, ErrIndexOutOfRange
}
