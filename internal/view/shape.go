package view

import "fmt"

// Shape represents the extents of a view, one entry per dimension.
type Shape []int

// NumElements returns the number of index tuples in the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Rank-0 has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at dimension %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Uniform returns a rank-r shape with every extent equal to n.
func Uniform(r, n int) Shape {
	s := make(Shape, r)
	for i := range s {
		s[i] = n
	}
	return s
}
