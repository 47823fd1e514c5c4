package sorted

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ddirect/sortedlist"
	"github.com/ddirect/sortedlist/internal/chain"
)

var (
	ErrOutOfRange    = errors.New("sorted: cursor out of range")
	ErrStaleCursor   = errors.New("sorted: cursor to a removed element")
	ErrForeignCursor = errors.New("sorted: cursor from another list")
)

// List keeps its elements in descending order: an element is always traversed
// before the elements it is Before. Equal elements are kept in insertion order.
// The zero value is an empty list. It is not safe to use a List concurrently
// from different goroutines.
type List[T sortedlist.Comparer[T]] struct {
	c chain.Chain[T]
}

func New[T sortedlist.Comparer[T]]() *List[T] {
	return new(List[T])
}

// Of returns a new list holding vs.
func Of[T sortedlist.Comparer[T]](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.Insert(v)
	}
	return l
}

func (l *List[T]) Len() int {
	return l.c.Len()
}

// Insert adds v after every element which is not strictly smaller than v.
func (l *List[T]) Insert(v T) *List[T] {
	// appending is the common case when feeding an already ordered sequence
	if back := l.c.Back(); back.IsZero() || !v.Before(*l.c.Value(back)) {
		l.c.InsertBefore(v, chain.Ref{})
		return l
	}
	mark := l.c.Front()
	for !v.Before(*l.c.Value(mark)) {
		mark = l.c.Next(mark)
	}
	l.c.InsertBefore(v, mark)
	return l
}

func (l *List[T]) InsertSeq(seq iter.Seq[T]) *List[T] {
	for v := range seq {
		l.Insert(v)
	}
	return l
}

// Remove deletes the element at c. Removing at the end position does nothing.
// It panics if c was obtained from another list or its element was already removed.
func (l *List[T]) Remove(c Cursor[T]) *List[T] {
	if c.ref.IsZero() {
		return l
	}
	if c.l != l {
		panic(fmt.Errorf("removing: %w", ErrForeignCursor))
	}
	if !l.c.Valid(c.ref) {
		panic(fmt.Errorf("removing: %w", ErrStaleCursor))
	}
	l.c.Remove(c.ref)
	return l
}

func (l *List[T]) Clear() {
	l.c.Clear()
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	return New[T]().Assign(l)
}

// Assign replaces the content of l with a copy of src and returns l.
// Cursors previously obtained from l become stale.
func (l *List[T]) Assign(src *List[T]) *List[T] {
	l.c.Assign(&src.c)
	return l
}

// Filter returns a new list with the elements for which keep returns true.
// keep is called once per element, in order.
func (l *List[T]) Filter(keep func(T) bool) *List[T] {
	res := New[T]()
	for v := range l.All() {
		if keep(v) {
			res.Insert(v)
		}
	}
	return res
}

// Apply returns a new list with the result of f for each element, called in order.
// The result is sorted again, so f may change the ordering of the elements.
func (l *List[T]) Apply(f func(T) T) *List[T] {
	res := New[T]()
	for v := range l.All() {
		res.Insert(f(v))
	}
	return res
}

func (l *List[T]) First() (v T, ok bool) {
	if front := l.c.Front(); !front.IsZero() {
		v = *l.c.Value(front)
		ok = true
	}
	return
}

// All returns the elements in order. The current element can be removed while
// iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range l.Cursors() {
			if !yield(*l.c.Value(c.ref)) {
				return
			}
		}
	}
}

// Cursors returns a cursor to each element in order. The element at the
// yielded cursor can be removed while iterating; iteration stops if the
// following element is removed as well.
func (l *List[T]) Cursors() iter.Seq[Cursor[T]] {
	return func(yield func(Cursor[T]) bool) {
		r := l.c.Front()
		for !r.IsZero() {
			next := l.c.Next(r)
			if !yield(Cursor[T]{l, r}) {
				return
			}
			switch {
			case l.c.Valid(r):
				r = l.c.Next(r)
			case next.IsZero() || l.c.Valid(next):
				r = next
			default:
				return
			}
		}
	}
}

func (l *List[T]) Begin() Cursor[T] {
	return Cursor[T]{l, l.c.Front()}
}

func (l *List[T]) End() Cursor[T] {
	return Cursor[T]{l: l}
}
