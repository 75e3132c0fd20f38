package lineal

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// CheckLengths returns an error wrapping ErrLengthMismatch when a and b have
// different lengths.
func CheckLengths(a, b Operand) error {
	if a.Len() != b.Len() {
		return errors.Wrapf(ErrLengthMismatch, "%d and %d elements", a.Len(), b.Len())
	}
	return nil
}

type releaser interface {
	released() bool
}

// CheckLive walks x down to its base and reports, wrapping ErrReleased,
// every vector whose buffer was released.
func CheckLive(x Operand) error {
	var err error
	for x != nil {
		if r, ok := x.(releaser); ok && r.released() {
			err = multierr.Append(err, errors.Wrapf(ErrReleased, "%s", describe(x)))
		}
		e, ok := x.(*Expr)
		if !ok {
			break
		}
		x = e.x
	}
	return err
}

// CheckedInnerProduct is InnerProduct with every precondition verified
// first: orientations, equal lengths and live vectors. All violations are
// returned together; use multierr.Errors to list them.
func CheckedInnerProduct(row, col Operand) (Scalar, error) {
	var err error
	if !IsRow(row) || !IsCol(col) {
		err = multierr.Append(err, shapeMismatch("inner product", row, col))
	}
	if row != nil && col != nil {
		err = multierr.Combine(err, CheckLengths(row, col), CheckLive(row), CheckLive(col))
	}
	if err != nil {
		return Scalar{}, err
	}
	return InnerProduct(row, col)
}
