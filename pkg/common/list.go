package common

// List accumulates items in insertion order.
type List[T any] struct {
	items []T
}

func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

func (l *List[T]) Items() []T {
	return l.items
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// MarshalYAML writes the list as a plain sequence.
func (l List[T]) MarshalYAML() (interface{}, error) {
	if l.items == nil {
		return []T{}, nil
	}
	return l.items, nil
}
