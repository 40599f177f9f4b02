package seqs

var (
	_ = []Iterator{(*finiteIterator)(nil), (*linkedIterator)(nil), (*lazyIterator)(nil)}
)

// Iterator walks a sequence from left to right. Next advances to the next
// element and reports whether one was available; Value returns the element
// Next advanced to. HasNext never advances: over a lazy sequence it buffers
// at most one pending element, so consumers stay in control of production.
type Iterator interface {
	HasNext() bool
	Next() bool
	Value() Value
}

// finiteIterator walks any random-access representation.
type finiteIterator struct {
	seq     finiteSequence
	i       int
	current Value
}

func (it *finiteIterator) HasNext() bool {
	return it.i < it.seq.Len()
}

func (it *finiteIterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.current = it.seq.At(it.i)
	it.i++
	return true
}

func (it *finiteIterator) Value() Value {
	return it.current
}

type linkedIterator struct {
	node    *LinkedSequence
	current Value
}

func (it *linkedIterator) HasNext() bool {
	return it.node != nil
}

func (it *linkedIterator) Next() bool {
	if it.node == nil {
		return false
	}
	it.current = it.node.head
	it.node = it.node.tail
	return true
}

func (it *linkedIterator) Value() Value {
	return it.current
}

type lazyIterator struct {
	seq      *LazySequence
	buffered Value
	hasBuf   bool
	current  Value
}

func (it *lazyIterator) HasNext() bool {
	if it.hasBuf {
		return true
	}
	v, ok := it.seq.pull()
	if !ok {
		return false
	}
	it.buffered = v
	it.hasBuf = true
	return true
}

func (it *lazyIterator) Next() bool {
	if !it.HasNext() {
		return false
	}
	it.current = it.buffered
	it.buffered = nil
	it.hasBuf = false
	return true
}

func (it *lazyIterator) Value() Value {
	return it.current
}

// iterateAll drains it into a slice. The input must be known finite.
func iterateAll(it Iterator) []Value {
	var elements []Value
	for it.Next() {
		elements = append(elements, it.Value())
	}
	return elements
}

// producerOf turns an iterator into a producer.
func producerOf(it Iterator) Producer {
	return func() (Value, bool) {
		if !it.Next() {
			return nil, false
		}
		return it.Value(), true
	}
}
