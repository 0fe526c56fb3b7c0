// Package view provides multi-dimensional array views over host and team
// scratch memory.
package view

import "unsafe"

// Elem is a constraint for supported view element types.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// DataType represents runtime type information for views.
type DataType int

// Supported data types for views.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// DTypeOf infers the DataType of T, including named types built on the
// supported kinds.
func DTypeOf[T Elem]() DataType {
	var one T = 1
	isFloat := one/2 != 0

	switch unsafe.Sizeof(one) {
	case 8:
		if isFloat {
			return Float64
		}
		return Int64
	case 4:
		if isFloat {
			return Float32
		}
		return Int32
	default:
		return Uint8
	}
}
