package sorted

import (
	"github.com/ddirect/sortedlist"
	"github.com/ddirect/sortedlist/internal/chain"
)

// Cursor is a read only position in a List: either an element or the end
// position. Cursors can be compared with ==; two cursors from the same list
// are equal if they refer to the same element or are both at the end.
type Cursor[T sortedlist.Comparer[T]] struct {
	l   *List[T]
	ref chain.Ref
}

func (c Cursor[T]) AtEnd() bool {
	return c.ref.IsZero()
}

// Value returns the element at c.
func (c Cursor[T]) Value() (v T, err error) {
	if err = c.check(); err == nil {
		v = *c.l.c.Value(c.ref)
	}
	return
}

// Next returns the cursor to the following element, or the end position when
// c is at the last element.
func (c Cursor[T]) Next() (Cursor[T], error) {
	if err := c.check(); err != nil {
		return c, err
	}
	return Cursor[T]{c.l, c.l.c.Next(c.ref)}, nil
}

func (c Cursor[T]) check() error {
	if c.ref.IsZero() {
		return ErrOutOfRange
	}
	if !c.l.c.Valid(c.ref) {
		return ErrStaleCursor
	}
	return nil
}
