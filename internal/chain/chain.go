package chain

import (
	"errors"
	"fmt"
)

var ErrStale = errors.New("chain: reference to a removed value")

// Chain is a doubly linked sequence stored in a slot arena. Removed slots are
// recycled; every stored value gets a generation number which is never reused
// by the same Chain, so a Ref to a removed value can always be told apart from
// a Ref to the value that later took its slot.
// The zero value is an empty chain.
type Chain[T any] struct {
	s          []slot[T]
	head, tail uint
	free       uint // first free slot plus 1; free slots are linked through next
	len        int
	gen        uint64
}

func (c *Chain[T]) Len() int {
	return c.len
}

func (c *Chain[T]) ulen() uint {
	return uint(len(c.s))
}

func (c *Chain[T]) Front() Ref {
	return c.ref(c.head)
}

func (c *Chain[T]) Back() Ref {
	return c.ref(c.tail)
}

// Valid reports whether r refers to a value currently stored in c.
func (c *Chain[T]) Valid(r Ref) bool {
	if r.indexP1 == 0 || r.indexP1 > c.ulen() {
		return false
	}
	return c.s[r.indexP1-1].gen == r.gen
}

// Value returns a pointer to the value referenced by r, which must be valid.
func (c *Chain[T]) Value(r Ref) *T {
	return &c.at(r).value
}

func (c *Chain[T]) Next(r Ref) Ref {
	return c.ref(c.at(r).next)
}

func (c *Chain[T]) Prev(r Ref) Ref {
	return c.ref(c.at(r).prev)
}

// InsertBefore links a new slot holding v just before mark. A zero mark
// appends v at the back.
func (c *Chain[T]) InsertBefore(v T, mark Ref) Ref {
	var next uint
	if !mark.IsZero() {
		c.at(mark)
		next = mark.indexP1
	}
	i := c.alloc(v)
	s := &c.s[i-1]
	s.next = next
	if next == 0 {
		s.prev = c.tail
		c.tail = i
	} else {
		s.prev = c.s[next-1].prev
		c.s[next-1].prev = i
	}
	if s.prev == 0 {
		c.head = i
	} else {
		c.s[s.prev-1].next = i
	}
	c.len++
	return c.ref(i)
}

// Remove unlinks the value referenced by r and releases its slot.
func (c *Chain[T]) Remove(r Ref) {
	s := c.at(r)
	if s.prev == 0 {
		c.head = s.next
	} else {
		c.s[s.prev-1].next = s.next
	}
	if s.next == 0 {
		c.tail = s.prev
	} else {
		c.s[s.next-1].prev = s.prev
	}
	s.setNotPresent()
	s.next = c.free
	c.free = r.indexP1
	c.len--
	if c.len == 0 {
		c.reset(nil)
	}
}

func (c *Chain[T]) Clear() {
	c.reset(nil)
}

// Assign replaces the content of c with a copy of src, in the same order.
// The copy is fully built before c is touched; all the Refs previously
// obtained from c become stale.
func (c *Chain[T]) Assign(src *Chain[T]) {
	if c == src {
		return
	}
	s := make([]slot[T], 0, src.len)
	gen := c.gen
	for i := src.head; i != 0; i = src.s[i-1].next {
		gen++
		n := uint(len(s)) + 1
		s = append(s, slot[T]{
			value: src.s[i-1].value,
			prev:  n - 1,
			next:  n + 1,
			gen:   gen,
		})
	}
	if len(s) > 0 {
		s[len(s)-1].next = 0
	}
	c.reset(s)
	c.gen = gen
}

func (c *Chain[T]) reset(s []slot[T]) {
	if s == nil {
		clear(c.s)
		s = c.s[:0]
	}
	c.s = s
	c.free = 0
	c.len = len(s)
	if c.len == 0 {
		c.head, c.tail = 0, 0
	} else {
		c.head, c.tail = 1, uint(c.len)
	}
}

func (c *Chain[T]) alloc(v T) uint {
	c.gen++
	i := c.free
	if i == 0 {
		c.s = append(c.s, slot[T]{})
		i = c.ulen()
	} else {
		c.free = c.s[i-1].next
	}
	c.s[i-1] = slot[T]{value: v, gen: c.gen}
	return i
}

func (c *Chain[T]) at(r Ref) *slot[T] {
	if !c.Valid(r) {
		panic(fmt.Errorf("accessing slot with index %d: %w", int(r.indexP1)-1, ErrStale))
	}
	return &c.s[r.indexP1-1]
}

func (c *Chain[T]) ref(indexP1 uint) Ref {
	if indexP1 == 0 {
		return Ref{}
	}
	return Ref{indexP1, c.s[indexP1-1].gen}
}
