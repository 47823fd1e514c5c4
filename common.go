package sortedlist

// Comparer orders values for the sorted containers: a.Before(b) reports whether
// a is strictly greater than b, so a is traversed first.
type Comparer[T any] interface {
	Before(T) bool
}
