package endless

// Iterator walks an Array front to back. It does not own the elements; any
// add, insert, removal or clear on the array after the iterator is created
// makes Next fail with ErrStaleIterator.
type Iterator[T comparable] struct {
	arr     *Array[T]
	cursor  int
	version int
}

// Iterator returns a sequential iterator positioned at the first element.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{arr: a, version: a.version}
}

// HasNext moves past empty slots and reports whether a live one remains.
func (it *Iterator[T]) HasNext() bool {
	for it.cursor < it.arr.length {
		if it.arr.slots[it.cursor].Ok {
			return true
		}
		it.cursor++
	}
	return false
}

func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.version != it.arr.version {
		return zero, ErrStaleIterator
	}
	element, err := it.arr.Get(it.cursor)
	if err != nil {
		return zero, ErrNoSuchElement
	}
	it.cursor++
	return element, nil
}

// ZigzagIterator alternates between the front and the back of an Array,
// starting at the front. It stops as soon as the two cursors meet, so the
// element they meet on is never visited and arrays of length one or zero
// yield nothing.
type ZigzagIterator[T comparable] struct {
	arr       *Array[T]
	cursor    int
	endCursor int
	front     bool
	version   int
}

func (a *Array[T]) Zigzag() *ZigzagIterator[T] {
	return &ZigzagIterator[T]{
		arr:       a,
		endCursor: a.length - 1,
		front:     true,
		version:   a.version,
	}
}

func (it *ZigzagIterator[T]) HasNext() bool {
	return it.cursor < it.endCursor
}

func (it *ZigzagIterator[T]) Next() (T, error) {
	var zero T
	if it.version != it.arr.version {
		return zero, ErrStaleIterator
	}
	if !it.HasNext() {
		return zero, indexError(ErrIndexOutOfRange, it.cursor, it.arr.length)
	}
	var current int
	if it.front {
		current = it.cursor
		it.cursor++
	} else {
		current = it.endCursor
		it.endCursor--
	}
	it.front = !it.front
	return it.arr.Get(current)
}
