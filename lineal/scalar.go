package lineal

import (
	"math"
	"strconv"
)

// Op is one of the four arithmetic operators.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Scalar is a numeric value tagged with its DType. The zero Scalar has DType
// Invalid and reads as 0.
type Scalar struct {
	dtype DType
	// bits holds the value: IEEE bits of a float64 for float types, the
	// two's complement int64 for signed types, the uint64 otherwise.
	bits uint64
}

// ScalarOf returns v tagged with the DType of T.
func ScalarOf[T Number](v T) Scalar {
	d := DTypeOf[T]()
	switch {
	case d.IsFloat():
		return Scalar{dtype: d, bits: math.Float64bits(float64(v))}
	case d.IsSigned():
		return Scalar{dtype: d, bits: uint64(int64(v))}
	}
	return Scalar{dtype: d, bits: uint64(v)}
}

// ValueOf converts s to T with Go conversion semantics.
func ValueOf[T Number](s Scalar) T {
	switch {
	case s.dtype.IsFloat():
		return T(math.Float64frombits(s.bits))
	case s.dtype.IsSigned():
		return T(int64(s.bits))
	}
	return T(s.bits)
}

// DType returns the element type of s.
func (s Scalar) DType() DType {
	return s.dtype
}

// Float64 returns s converted to float64.
func (s Scalar) Float64() float64 {
	return ValueOf[float64](s)
}

// Int64 returns s converted to int64.
func (s Scalar) Int64() int64 {
	return ValueOf[int64](s)
}

// Uint64 returns s converted to uint64.
func (s Scalar) Uint64() uint64 {
	return ValueOf[uint64](s)
}

// As returns s converted to d. Converting to Invalid yields the zero Scalar.
func (s Scalar) As(d DType) Scalar {
	switch d {
	case Float64:
		return ScalarOf(ValueOf[float64](s))
	case Float32:
		return ScalarOf(ValueOf[float32](s))
	case Int64:
		return ScalarOf(ValueOf[int64](s))
	case Int32:
		return ScalarOf(ValueOf[int32](s))
	case Int16:
		return ScalarOf(ValueOf[int16](s))
	case Int8:
		return ScalarOf(ValueOf[int8](s))
	case Uint64:
		return ScalarOf(ValueOf[uint64](s))
	case Uint32:
		return ScalarOf(ValueOf[uint32](s))
	case Uint16:
		return ScalarOf(ValueOf[uint16](s))
	case Uint8:
		return ScalarOf(ValueOf[uint8](s))
	}
	return Scalar{}
}

func (s Scalar) String() string {
	switch {
	case s.dtype == Float32:
		return strconv.FormatFloat(s.Float64(), 'g', -1, 32)
	case s.dtype.IsFloat():
		return strconv.FormatFloat(s.Float64(), 'g', -1, 64)
	case s.dtype.IsSigned():
		return strconv.FormatInt(s.Int64(), 10)
	}
	return strconv.FormatUint(s.bits, 10)
}

// Fold applies op to a and b in PreciseType(a.DType(), b.DType()).
//
// Integer division by zero panics.
func Fold(op Op, a, b Scalar) Scalar {
	switch PreciseType(a.dtype, b.dtype) {
	case Float64:
		return foldAs[float64](op, a, b)
	case Float32:
		return foldAs[float32](op, a, b)
	case Int64:
		return foldAs[int64](op, a, b)
	case Int32:
		return foldAs[int32](op, a, b)
	case Int16:
		return foldAs[int16](op, a, b)
	case Int8:
		return foldAs[int8](op, a, b)
	case Uint64:
		return foldAs[uint64](op, a, b)
	case Uint32:
		return foldAs[uint32](op, a, b)
	case Uint16:
		return foldAs[uint16](op, a, b)
	case Uint8:
		return foldAs[uint8](op, a, b)
	}
	return Scalar{}
}

func foldAs[T Number](op Op, a, b Scalar) Scalar {
	return ScalarOf(arith(op, ValueOf[T](a), ValueOf[T](b)))
}

func arith[T Number](op Op, x, y T) T {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	}
	panic("lineal: unknown operator " + op.String())
}

func (s Scalar) plus(t Scalar) Scalar  { return Fold(OpAdd, s, t) }
func (s Scalar) minus(t Scalar) Scalar { return Fold(OpSub, s, t) }
func (s Scalar) times(t Scalar) Scalar { return Fold(OpMul, s, t) }
func (s Scalar) over(t Scalar) Scalar  { return Fold(OpDiv, s, t) }
