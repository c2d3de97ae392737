// Package endless provides Array, a growable array with a hard size ceiling.
package endless

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	g "github.com/anacrolix/generics"
	"github.com/emirpasic/gods/containers"
)

const (
	// MaxLength is the most elements an Array will ever hold.
	MaxLength = 10
	// DefaultInitialSize is the physical capacity of a new or cleared Array.
	DefaultInitialSize = 5
)

var _ containers.Container = (*Array[int])(nil)

var hashSeed = maphash.MakeSeed()

// Array is a bounded growable array. Storage starts at DefaultInitialSize
// slots and grows by half again whenever it fills, up to MaxLength.
//
// Slots [0, length) are always live; slots past length are None.
type Array[T comparable] struct {
	slots   []g.Option[T]
	length  int
	version int
}

// Lengther is anything ordered by its length.
type Lengther interface {
	Length() int
}

func New[T comparable]() *Array[T] {
	a := &Array[T]{}
	a.initSlots()
	return a
}

// Capacity returns MaxLength, the ceiling, not the current storage size.
func (a *Array[T]) Capacity() int {
	return MaxLength
}

// Cap returns the current physical storage size.
func (a *Array[T]) Cap() int {
	return len(a.slots)
}

func (a *Array[T]) Length() int {
	return a.length
}

func (a *Array[T]) IsEmpty() bool {
	return a.length == 0
}

// Clear drops every element and starts over with fresh storage.
func (a *Array[T]) Clear() {
	a.initSlots()
	a.version++
}

// IndexOf returns the first index holding element, or -1.
func (a *Array[T]) IndexOf(element T) int {
	for i := 0; i < a.length; i++ {
		if a.slots[i].Value == element {
			return i
		}
	}
	return -1
}

func (a *Array[T]) Contains(element T) bool {
	return a.IndexOf(element) >= 0
}

func (a *Array[T]) Get(index int) (T, error) {
	if !a.isValidIndex(index) {
		var zero T
		return zero, indexError(ErrIndexOutOfRange, index, a.length)
	}
	return a.slots[index].Value, nil
}

// Add appends element, growing storage first if it is full.
func (a *Array[T]) Add(element T) error {
	if a.length == len(a.slots) && !a.grow() {
		return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, MaxLength)
	}
	a.slots[a.length] = g.Some(element)
	a.length++
	a.version++
	return nil
}

// AddTo inserts element at index, shifting later elements right. The index
// must address a live element, so AddTo never appends.
func (a *Array[T]) AddTo(index int, element T) error {
	if !a.isValidIndex(index) {
		return indexError(ErrInvalidArgument, index, a.length)
	}
	if a.length >= MaxLength {
		return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, MaxLength)
	}
	// The tail element is pushed back through Add so growth happens in one place.
	last := a.slots[a.length-1].Value
	for i := a.length - 1; i > index; i-- {
		a.slots[i] = a.slots[i-1]
	}
	a.slots[index] = g.Some(element)
	return a.Add(last)
}

func (a *Array[T]) Set(index int, element T) error {
	if !a.isValidIndex(index) {
		return indexError(ErrInvalidArgument, index, a.length)
	}
	a.slots[index] = g.Some(element)
	return nil
}

// RemoveFrom removes and returns the element at index.
func (a *Array[T]) RemoveFrom(index int) (T, error) {
	if !a.isValidIndex(index) {
		var zero T
		return zero, indexError(ErrInvalidArgument, index, a.length)
	}
	removed := a.slots[index].Value
	copy(a.slots[index:a.length-1], a.slots[index+1:a.length])
	a.slots[a.length-1] = g.None[T]()
	a.length--
	a.version++
	return removed, nil
}

// Remove removes the first occurrence of element and reports whether it was found.
func (a *Array[T]) Remove(element T) bool {
	index := a.IndexOf(element)
	if index == -1 {
		return false
	}
	_, err := a.RemoveFrom(index)
	return err == nil
}

func (a *Array[T]) DeleteFrom(index int) error {
	_, err := a.RemoveFrom(index)
	return err
}

func (a *Array[T]) Delete(element T) {
	a.Remove(element)
}

// ToArray returns a fresh slice of the live elements.
func (a *Array[T]) ToArray() []T {
	out := make([]T, a.length)
	for i := range out {
		out[i] = a.slots[i].Value
	}
	return out
}

// Copy builds a new Array by adding each element in order. The copy starts
// from DefaultInitialSize storage rather than cloning the physical capacity.
func (a *Array[T]) Copy() *Array[T] {
	c := New[T]()
	for i := 0; i < a.length; i++ {
		// Cannot fail: a never holds more than MaxLength elements.
		_ = c.Add(a.slots[i].Value)
	}
	return c
}

func (a *Array[T]) String() string {
	if a.length == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < a.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(a.slots[i].Value))
	}
	sb.WriteString("]")
	return sb.String()
}

// Equals reports whether other holds the same elements in the same order.
func (a *Array[T]) Equals(other *Array[T]) bool {
	if other == nil {
		return false
	}
	if other == a {
		return true
	}
	if a.length != other.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.slots[i].Value != other.slots[i].Value {
			return false
		}
	}
	return true
}

// HashCode combines the element hashes in order. Arrays that are Equal hash
// equal within one process.
func (a *Array[T]) HashCode() int {
	h := 31
	for i := 0; i < a.length; i++ {
		h = h*17 + int(maphash.Comparable(hashSeed, a.slots[i].Value))
	}
	return h
}

// CompareTo orders arrays by length alone. Arrays of equal length compare
// as 0 whatever they hold.
func (a *Array[T]) CompareTo(other Lengther) int {
	return a.length - other.Length()
}

// Slot returns the raw storage slot at index, or None when index is past
// the physical capacity.
func (a *Array[T]) Slot(index int) g.Option[T] {
	if index < 0 || index >= len(a.slots) {
		return g.None[T]()
	}
	return a.slots[index]
}

// All yields the live elements front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.slots[i].Value) {
				return
			}
		}
	}
}

// Backward yields the live elements back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.length - 1; i >= 0; i-- {
			if !yield(i, a.slots[i].Value) {
				return
			}
		}
	}
}

// Empty, Size and Values satisfy containers.Container.

func (a *Array[T]) Empty() bool {
	return a.IsEmpty()
}

func (a *Array[T]) Size() int {
	return a.length
}

func (a *Array[T]) Values() []interface{} {
	out := make([]interface{}, a.length)
	for i := range out {
		out[i] = a.slots[i].Value
	}
	return out
}

func (a *Array[T]) grow() bool {
	newLen := len(a.slots) * 3 / 2
	if newLen > MaxLength {
		newLen = MaxLength
	}
	if newLen <= len(a.slots) {
		return false
	}
	grown := make([]g.Option[T], newLen)
	copy(grown, a.slots)
	a.slots = grown
	return true
}

func (a *Array[T]) isValidIndex(i int) bool {
	return i >= 0 && i < a.length
}

func (a *Array[T]) initSlots() {
	a.slots = make([]g.Option[T], DefaultInitialSize)
	a.length = 0
}
