package lineal

import (
	"github.com/pkg/errors"
)

// Apply computes lhs op rhs for dynamically typed arguments. Each argument is
// an Operand, a Scalar or a Go number (any Value type).
//
//   - operand op scalar and scalar op operand return an *Expr, as the
//     combinators do;
//   - row * col returns the inner product as a Scalar;
//   - any other pair of operands is a *ShapeMismatchError;
//   - scalar op scalar returns the folded Scalar.
//
// Arguments of other types yield an error wrapping ErrUnsupportedOperand.
func Apply(op Op, lhs, rhs any) (any, error) {
	if op > OpDiv {
		return nil, errors.Errorf("lineal: invalid operator %s", op)
	}
	lo, lok := lhs.(Operand)
	ro, rok := rhs.(Operand)

	switch {
	case lok && rok:
		if op == OpMul && IsRow(lo) && IsCol(ro) {
			return InnerProduct(lo, ro)
		}
		return nil, shapeMismatch(op.String(), lo, ro)

	case lok:
		t, err := toScalar(rhs)
		if err != nil {
			return nil, err
		}
		return compose(lo, [...]step{stepAdd, stepSub, stepMul, stepDiv}[op], t), nil

	case rok:
		t, err := toScalar(lhs)
		if err != nil {
			return nil, err
		}
		return compose(ro, [...]step{stepAdd, stepRevSub, stepMul, stepRevDiv}[op], t), nil
	}

	a, err := toScalar(lhs)
	if err != nil {
		return nil, err
	}
	b, err := toScalar(rhs)
	if err != nil {
		return nil, err
	}
	return Fold(op, a, b), nil
}

// toScalar converts a Scalar or a Go number to a Scalar.
func toScalar(x any) (Scalar, error) {
	switch x := x.(type) {
	case Scalar:
		if !x.dtype.IsValid() {
			return Scalar{}, errors.Wrapf(ErrUnsupportedOperand, "scalar of dtype %s", x.dtype)
		}
		return x, nil
	case float64:
		return ScalarOf(x), nil
	case float32:
		return ScalarOf(x), nil
	case int:
		return ScalarOf(int64(x)), nil
	case int64:
		return ScalarOf(x), nil
	case int32:
		return ScalarOf(x), nil
	case int16:
		return ScalarOf(x), nil
	case int8:
		return ScalarOf(x), nil
	case uint:
		return ScalarOf(uint64(x)), nil
	case uint64:
		return ScalarOf(x), nil
	case uint32:
		return ScalarOf(x), nil
	case uint16:
		return ScalarOf(x), nil
	case uint8:
		return ScalarOf(x), nil
	}
	return Scalar{}, errors.Wrapf(ErrUnsupportedOperand, "%T", x)
}
