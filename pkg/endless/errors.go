package endless

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when reading at an index outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument is returned when mutating at an index outside [0, length).
	ErrInvalidArgument = errors.New("index out of bounds")
	// ErrCapacityExceeded is returned when an insertion would pass MaxLength.
	ErrCapacityExceeded = errors.New("array is full")
	// ErrNoSuchElement is returned by an exhausted iterator.
	ErrNoSuchElement = errors.New("no such element")
	// ErrStaleIterator is returned when the array changed shape after the
	// iterator was created.
	ErrStaleIterator = errors.New("array modified during iteration")
)

// ErrorKind names the sentinel behind err, or returns "" if there is none.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIndexOutOfRange):
		return "IndexOutOfRange"
	case errors.Is(err, ErrInvalidArgument):
		return "InvalidArgument"
	case errors.Is(err, ErrCapacityExceeded):
		return "CapacityExceeded"
	case errors.Is(err, ErrNoSuchElement):
		return "NoSuchElement"
	case errors.Is(err, ErrStaleIterator):
		return "StaleIterator"
	default:
		return ""
	}
}

func indexError(sentinel error, index int, length int) error {
	return fmt.Errorf("%w: index %d, length %d", sentinel, index, length)
}
