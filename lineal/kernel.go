package lineal

import (
	"github.com/go-lineal/lineal/hwy"
	"github.com/go-lineal/lineal/hwy/contrib/vec"
)

// combine applies kind k to the operand value x with multiplier m and addend
// a. Products and quotients are rounded to T before the addend is applied,
// so the result never depends on multiply-add fusion by the compiler.
func combine[T Number](k Kind, x, m, a T) T {
	switch k {
	case KindAdd:
		return x + a
	case KindSub:
		return x - a
	case KindRevSub:
		return a - x
	case KindMul:
		return m * x
	case KindDiv:
		return x / m
	case KindRevDiv:
		return m / x
	case KindFMA:
		return T(m*x) + a
	case KindFMASub:
		return T(m*x) - a
	case KindFMARevSub:
		return a - T(m*x)
	case KindFDA:
		return T(x/m) + a
	case KindFDASub:
		return T(x/m) - a
	case KindFDARevSub:
		return a - T(x/m)
	case KindFDAInv:
		return T(m/x) + a
	case KindFDAInvSub:
		return T(m/x) - a
	case KindFDAInvRevSub:
		return a - T(m/x)
	}
	panic("lineal: invalid kind " + k.String())
}

// combineLanes is combine over one batch of lanes, with the same operation
// order.
func combineLanes[T Number](k Kind, x, m, a hwy.Vec[T]) hwy.Vec[T] {
	switch k {
	case KindAdd:
		return hwy.Add(x, a)
	case KindSub:
		return hwy.Sub(x, a)
	case KindRevSub:
		return hwy.Sub(a, x)
	case KindMul:
		return hwy.Mul(m, x)
	case KindDiv:
		return hwy.Div(x, m)
	case KindRevDiv:
		return hwy.Div(m, x)
	case KindFMA:
		return hwy.Add(hwy.Mul(m, x), a)
	case KindFMASub:
		return hwy.Sub(hwy.Mul(m, x), a)
	case KindFMARevSub:
		return hwy.Sub(a, hwy.Mul(m, x))
	case KindFDA:
		return hwy.Add(hwy.Div(x, m), a)
	case KindFDASub:
		return hwy.Sub(hwy.Div(x, m), a)
	case KindFDARevSub:
		return hwy.Sub(a, hwy.Div(x, m))
	case KindFDAInv:
		return hwy.Add(hwy.Div(m, x), a)
	case KindFDAInvSub:
		return hwy.Sub(hwy.Div(m, x), a)
	case KindFDAInvRevSub:
		return hwy.Sub(a, hwy.Div(m, x))
	}
	panic("lineal: invalid kind " + k.String())
}

// Eval evaluates element i of x converted to T.
func Eval[T Number](x Operand, i int) T {
	return operandAt[T](x, i)
}

func evalAt[T Number](e *Expr, i int) T {
	return combine(e.kind, operandAt[T](e.x, i), ValueOf[T](e.mul), ValueOf[T](e.add))
}

// operandAt returns element i of x as T. Operands of another dtype are
// evaluated in their own dtype and converted afterwards.
func operandAt[T Number](x Operand, i int) T {
	switch x := x.(type) {
	case *Vector[T]:
		return x.At(i)
	case *Expr:
		if x.dtype == DTypeOf[T]() {
			return evalAt[T](x, i)
		}
	}
	return ValueOf[T](x.Elem(i))
}

// kernelOf returns an element function equivalent to operandAt[T](x, ·)
// with the dispatch on x done once.
func kernelOf[T Number](x Operand) func(int) T {
	switch x := x.(type) {
	case *Vector[T]:
		data := x.Data()
		return func(i int) T { return data[i] }
	case *Expr:
		if x.dtype == DTypeOf[T]() {
			inner := kernelOf[T](x.x)
			k, m, a := x.kind, ValueOf[T](x.mul), ValueOf[T](x.add)
			return func(i int) T { return combine(k, inner(i), m, a) }
		}
	}
	return func(i int) T { return ValueOf[T](x.Elem(i)) }
}

// Materialize evaluates every element of x, converted to T, into a new owned
// vector with the orientation of x.
//
// A node sitting directly on a vector of its own dtype is evaluated in
// batches of hwy.MaxLanes elements; anything else is evaluated element by
// element. Both paths round identically.
func Materialize[T Number](x Operand) (*Vector[T], error) {
	out, err := NewVector[T](x.Orientation(), x.Len(), FillNone)
	if err != nil {
		return nil, err
	}
	materializeInto(out.Data(), x)
	return out, nil
}

func materializeInto[T Number](dst []T, x Operand) {
	if e, ok := x.(*Expr); ok && e.dtype == DTypeOf[T]() {
		if v, ok := e.x.(*Vector[T]); ok {
			materializeBatched(dst, e, v.Data())
			return
		}
	}
	at := kernelOf[T](x)
	for i := range dst {
		dst[i] = at(i)
	}
}

func materializeBatched[T Number](dst []T, e *Expr, src []T) {
	m, a := ValueOf[T](e.mul), ValueOf[T](e.add)
	switch e.kind {
	case KindAdd:
		vec.BaseAddConstTo(dst, a, src)
	case KindMul:
		vec.BaseScaleTo(dst, m, src)
	case KindFMA:
		vec.BaseMulAddConstTo(dst, src, m, a)
	default:
		k := e.kind
		vm, va := hwy.Set(m), hwy.Set(a)
		vec.MapTo(dst, src,
			func(x hwy.Vec[T]) hwy.Vec[T] { return combineLanes(k, x, vm, va) },
			func(x T) T { return combine(k, x, m, a) },
		)
	}
}

// materializeOperand returns x itself when it is not an *Expr, and x
// evaluated into a temporary vector of its own dtype otherwise.
func materializeOperand(x Operand) (Operand, error) {
	if !IsComposed(x) {
		return x, nil
	}
	switch x.DType() {
	case Float64:
		return Materialize[float64](x)
	case Float32:
		return Materialize[float32](x)
	case Int64:
		return Materialize[int64](x)
	case Int32:
		return Materialize[int32](x)
	case Int16:
		return Materialize[int16](x)
	case Int8:
		return Materialize[int8](x)
	case Uint64:
		return Materialize[uint64](x)
	case Uint32:
		return Materialize[uint32](x)
	case Uint16:
		return Materialize[uint16](x)
	case Uint8:
		return Materialize[uint8](x)
	}
	panic("lineal: expression of invalid dtype")
}
