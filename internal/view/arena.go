package view

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrScratchExhausted is the panic value (wrapped) raised when a scratch
// allocation does not fit in the team's scratch region.
var ErrScratchExhausted = errors.New("scratch memory exhausted")

// scratchAlign is the alignment of every scratch allocation, in bytes.
const scratchAlign = 8

// Arena hands out scratch memory from a region shared by all lanes of a team.
//
// Every lane owns its own Arena over the same region. Allocation only moves
// the lane's private cursor, so lanes performing the same sequence of
// allocations receive the same storage without coordinating.
type Arena struct {
	buf    []byte
	cursor int
}

// NewRegion allocates a zeroed, 8-byte aligned scratch region of at least
// size bytes.
func NewRegion(size int) []byte {
	if size <= 0 {
		return nil
	}
	words := make([]uint64, (size+scratchAlign-1)/scratchAlign)
	//nolint:gosec // unsafe.Slice reinterprets the word buffer as bytes, length bounded by words.
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}

// NewArena creates a lane-private cursor over a shared scratch region.
func NewArena(region []byte) *Arena {
	return &Arena{buf: region}
}

// Capacity returns the size of the scratch region in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Used returns the number of bytes allocated through this arena so far.
func (a *Arena) Used() int {
	return a.cursor
}

// Reset rewinds the cursor to the start of the region.
func (a *Arena) Reset() {
	a.cursor = 0
}

// Alloc returns the next size bytes of the region.
// Panics with ErrScratchExhausted if the region is too small.
func (a *Arena) Alloc(size int) []byte {
	aligned := alignUp(size)
	if a.cursor+aligned > len(a.buf) {
		panic(fmt.Errorf("%w: requested %d bytes, %d of %d in use",
			ErrScratchExhausted, size, a.cursor, len(a.buf)))
	}
	b := a.buf[a.cursor : a.cursor+size]
	a.cursor += aligned
	return b
}

// ScratchSize returns the number of scratch bytes a view of T with the given
// extents occupies, including alignment padding.
func ScratchSize[T Elem](extents ...int) int {
	var zero T
	return alignUp(Shape(extents).NumElements() * int(unsafe.Sizeof(zero)))
}

func alignUp(n int) int {
	return (n + scratchAlign - 1) / scratchAlign * scratchAlign
}
