package lineal

import (
	"github.com/go-lineal/lineal/hwy/contrib/vec"
)

// InnerProduct returns Σ row[i]*col[i] over the first min(row.Len(),
// col.Len()) elements, in PreciseType(row.DType(), col.DType()).
//
// row must be a Row and col a Col; any other pairing is a
// *ShapeMismatchError. Lengths are not compared (see CheckedInnerProduct).
//
// Two raw vectors of the result dtype are reduced with the batched
// vec.Dot kernel. A scalar operation of the result dtype sitting directly on
// a raw vector is moved out of the reduction: (m*v + a)·c is computed as
// m*(v·c) + a*Σc. Other composed operands are first evaluated into
// temporary vectors.
func InnerProduct(row, col Operand) (Scalar, error) {
	if !IsRow(row) || !IsCol(col) {
		return Scalar{}, shapeMismatch("inner product", row, col)
	}
	switch PreciseType(row.DType(), col.DType()) {
	case Float64:
		return innerProduct[float64](row, col)
	case Float32:
		return innerProduct[float32](row, col)
	case Int64:
		return innerProduct[int64](row, col)
	case Int32:
		return innerProduct[int32](row, col)
	case Int16:
		return innerProduct[int16](row, col)
	case Int8:
		return innerProduct[int8](row, col)
	case Uint64:
		return innerProduct[uint64](row, col)
	case Uint32:
		return innerProduct[uint32](row, col)
	case Uint16:
		return innerProduct[uint16](row, col)
	case Uint8:
		return innerProduct[uint8](row, col)
	}
	return Scalar{}, shapeMismatch("inner product", row, col)
}

func innerProduct[T Number](row, col Operand) (Scalar, error) {
	v, err := dotAs[T](row, col)
	if err != nil {
		return Scalar{}, err
	}
	return ScalarOf(v), nil
}

// dotAs computes the inner product of x and y in T.
func dotAs[T Number](x, y Operand) (T, error) {
	if !IsComposed(x) && !IsComposed(y) {
		return dotRaw[T](x, y), nil
	}
	if e, ok := x.(*Expr); ok && pushable[T](e) {
		return pushOut[T](e, y)
	}
	if e, ok := y.(*Expr); ok && pushable[T](e) {
		return pushOut[T](e, x)
	}

	x, err := materializeOperand(x)
	if err != nil {
		return 0, err
	}
	y, err = materializeOperand(y)
	if err != nil {
		return 0, err
	}
	return dotRaw[T](x, y), nil
}

// dotRaw reduces two operands that are not expressions.
func dotRaw[T Number](x, y Operand) T {
	xv, xok := x.(*Vector[T])
	yv, yok := y.(*Vector[T])
	if xok && yok {
		return vec.Dot(xv.Data(), yv.Data())
	}
	n := min(x.Len(), y.Len())
	xa, ya := kernelOf[T](x), kernelOf[T](y)
	var sum T
	for i := range n {
		sum += T(xa(i) * ya(i))
	}
	return sum
}

// pushable reports whether the scalar part of e can be moved out of a
// reduction in T: e evaluates in T, sits directly on a raw vector and is
// affine in that vector. Division by the multiplier is only moved out for
// floating-point T, where it distributes over the sum.
func pushable[T Number](e *Expr) bool {
	if e.dtype != DTypeOf[T]() || IsComposed(e.x) {
		return false
	}
	switch f, _ := e.kind.split(); f {
	case famShift, famScale, famFMA:
		return true
	case famDivide, famFDA:
		return e.dtype.IsFloat()
	}
	return false
}

// pushOut computes e·y for a pushable e.
func pushOut[T Number](e *Expr, y Operand) (T, error) {
	n := min(e.Len(), y.Len())
	dot, err := dotAs[T](e.x, y)
	if err != nil {
		return 0, err
	}
	m, a := ValueOf[T](e.mul), ValueOf[T](e.add)

	f, sg := e.kind.split()
	var p T
	switch f {
	case famShift:
		p = dot
	case famScale, famFMA:
		p = m * dot
	case famDivide, famFDA:
		p = dot / m
	}
	if f == famScale || f == famDivide {
		return p, nil
	}

	sum := sumPrefix[T](y, n)
	switch sg {
	case signPlus:
		return p + T(a*sum), nil
	case signMinus:
		return p - T(a*sum), nil
	default:
		return T(a*sum) - p, nil
	}
}

// sumPrefix returns Σ x[i] for i < n in T.
func sumPrefix[T Number](x Operand, n int) T {
	if v, ok := x.(*Vector[T]); ok {
		return vec.Sum(v.Data()[:n])
	}
	at := kernelOf[T](x)
	var sum T
	for i := range n {
		sum += at(i)
	}
	return sum
}
