package chain

type slot[T any] struct {
	value T
	next  uint // index plus 1 of the successor - if zero, there is none
	prev  uint // index plus 1 of the predecessor - if zero, there is none
	gen   uint64
}

func (s *slot[T]) setNotPresent() {
	var zero T
	s.value = zero
	s.prev = 0
	s.gen = 0
}

// Ref is a handle to a value stored in a Chain. The zero Ref refers to nothing.
type Ref struct {
	indexP1 uint
	gen     uint64
}

func (r Ref) IsZero() bool {
	return r.indexP1 == 0
}
