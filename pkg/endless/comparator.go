package endless

import "github.com/emirpasic/gods/utils"

// Compare orders a and b by length.
func Compare(a, b Lengther) int {
	return a.Length() - b.Length()
}

// Comparator is Compare for gods containers and sort helpers. Both
// arguments must implement Lengther.
var Comparator utils.Comparator = func(a, b interface{}) int {
	return Compare(a.(Lengther), b.(Lengther))
}

// SortByLength sorts arrays in place, shortest first.
func SortByLength(arrays []Lengther) {
	values := make([]interface{}, len(arrays))
	for i, arr := range arrays {
		values[i] = arr
	}
	utils.Sort(values, Comparator)
	for i, v := range values {
		arrays[i] = v.(Lengther)
	}
}
