// Package layout maps multi-dimensional indices to linear storage offsets.
package layout

import "fmt"

// MaxRank is the highest rank the mappers are exercised with.
const MaxRank = 8

// Layout selects how an index tuple is linearized.
type Layout int

// Supported layouts.
const (
	// Right is row-major: the last index varies fastest.
	Right Layout = iota
	// Left is column-major: the first index varies fastest.
	Left
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case Right:
		return "LayoutRight"
	case Left:
		return "LayoutLeft"
	default:
		return "LayoutUnknown"
	}
}

// Parse converts a layout name ("right", "LayoutRight", "left", ...) to a Layout.
func Parse(s string) (Layout, error) {
	switch s {
	case "right", "Right", "LayoutRight", "row-major":
		return Right, nil
	case "left", "Left", "LayoutLeft", "column-major":
		return Left, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

// Strides calculates the strides of a contiguous array with the given extents.
//
// For Right, stride[R-1] = 1 and stride[k] = stride[k+1] * extents[k+1].
// For Left, stride[0] = 1 and stride[k] = stride[k-1] * extents[k-1].
func Strides(extents []int, l Layout) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}

	switch l {
	case Left:
		strides[0] = 1
		for k := 1; k < len(extents); k++ {
			strides[k] = strides[k-1] * extents[k-1]
		}
	default:
		strides[len(extents)-1] = 1
		for k := len(extents) - 2; k >= 0; k-- {
			strides[k] = strides[k+1] * extents[k+1]
		}
	}
	return strides
}

// Offset returns the linear offset of idx. Indices are not bounds checked.
func Offset(idx, strides []int) int {
	off := 0
	for k, i := range idx {
		off += i * strides[k]
	}
	return off
}

// Unravel converts a flat position in the contiguous index space of extents
// into a coordinate tuple written to coords. It is the inverse of Offset over
// Strides(extents, l).
func Unravel(flat int, extents []int, l Layout, coords []int) {
	switch l {
	case Left:
		for k := 0; k < len(extents); k++ {
			coords[k] = flat % extents[k]
			flat /= extents[k]
		}
	default:
		for k := len(extents) - 1; k >= 0; k-- {
			coords[k] = flat % extents[k]
			flat /= extents[k]
		}
	}
}

// Next advances coords to the following tuple in l's iteration order and
// reports whether it wrapped past the last tuple.
func Next(coords, extents []int, l Layout) bool {
	switch l {
	case Left:
		for k := 0; k < len(extents); k++ {
			coords[k]++
			if coords[k] < extents[k] {
				return false
			}
			coords[k] = 0
		}
	default:
		for k := len(extents) - 1; k >= 0; k-- {
			coords[k]++
			if coords[k] < extents[k] {
				return false
			}
			coords[k] = 0
		}
	}
	return true
}
