package localcopy

import (
	"errors"
	"fmt"

	"github.com/born-ml/localcopy/internal/view"
)

// ErrShapeMismatch is wrapped by every ShapeMismatchError.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeMismatchError is the panic value raised when a copy is asked to move
// data between views of different rank or extents.
type ShapeMismatchError struct {
	Op       string
	DstLabel string
	DstShape view.Shape
	SrcLabel string
	SrcShape view.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v: destination %q has extents %v, source %q has extents %v",
		e.Op, ErrShapeMismatch, e.DstLabel, []int(e.DstShape), e.SrcLabel, []int(e.SrcShape))
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func checkShapes[T view.Elem](op string, dst, src *view.View[T]) {
	if !dst.ShapeCompatible(src) {
		panic(&ShapeMismatchError{
			Op:       op,
			DstLabel: dst.Label(),
			DstShape: dst.Extents().Clone(),
			SrcLabel: src.Label(),
			SrcShape: src.Extents().Clone(),
		})
	}
}
