package lineal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedOperand is returned by Apply for values that are neither
	// an Operand, a Scalar nor a Go number.
	ErrUnsupportedOperand = errors.New("lineal: unsupported operand")

	// ErrLengthMismatch is reported by the checked functions when two
	// operands have different lengths.
	ErrLengthMismatch = errors.New("lineal: length mismatch")

	// ErrReleased is reported by CheckLive for a vector whose buffer was
	// released.
	ErrReleased = errors.New("lineal: vector released")
)

// AllocationError is returned when a buffer of Count elements of ElemSize
// bytes cannot be allocated.
type AllocationError struct {
	Count    int
	ElemSize int
	Cause    error
}

func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("lineal: cannot allocate %d elements of %d bytes", e.Count, e.ElemSize)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *AllocationError) Unwrap() error {
	return e.Cause
}

// ShapeMismatchError is returned when two operands cannot be combined by Op
// because of their orientations. Left and Right describe the operands, e.g.
// "row[4]" or "scalar".
type ShapeMismatchError struct {
	Op    string
	Left  string
	Right string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("lineal: %s: incompatible operands %s and %s", e.Op, e.Left, e.Right)
}

func shapeMismatch(op string, lhs, rhs any) error {
	return errors.WithStack(&ShapeMismatchError{Op: op, Left: describe(lhs), Right: describe(rhs)})
}

// describe renders the shape of an Apply argument.
func describe(x any) string {
	switch x := x.(type) {
	case Operand:
		return fmt.Sprintf("%s[%d]", x.Orientation(), x.Len())
	case Scalar:
		return "scalar"
	case nil:
		return "nil"
	}
	if _, err := toScalar(x); err == nil {
		return "scalar"
	}
	return fmt.Sprintf("%T", x)
}
