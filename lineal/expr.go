package lineal

import (
	"fmt"
	"strconv"
)

// Kind identifies the arithmetic an *Expr applies to its operand x, with
// multiplier m and addend a.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindAdd    // x + a
	KindSub    // x - a
	KindRevSub // a - x
	KindMul    // m * x
	KindDiv    // x / m
	KindRevDiv // m / x

	KindFMA       // m*x + a
	KindFMASub    // m*x - a
	KindFMARevSub // a - m*x

	KindFDA       // x/m + a
	KindFDASub    // x/m - a
	KindFDARevSub // a - x/m

	KindFDAInv       // m/x + a
	KindFDAInvSub    // m/x - a
	KindFDAInvRevSub // a - m/x
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindAdd:          "Add",
	KindSub:          "Sub",
	KindRevSub:       "RevSub",
	KindMul:          "Mul",
	KindDiv:          "Div",
	KindRevDiv:       "RevDiv",
	KindFMA:          "FMA",
	KindFMASub:       "FMASub",
	KindFMARevSub:    "FMARevSub",
	KindFDA:          "FDA",
	KindFDASub:       "FDASub",
	KindFDARevSub:    "FDARevSub",
	KindFDAInv:       "FDAInv",
	KindFDAInvSub:    "FDAInvSub",
	KindFDAInvRevSub: "FDAInvRevSub",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// family groups kinds by their multiplicative part.
type family uint8

const (
	famShift  family = iota // x
	famScale                // m*x, only KindMul
	famDivide               // x/m, only KindDiv
	famInvert               // m/x, only KindRevDiv
	famFMA                  // m*x
	famFDA                  // x/m
	famFDAInv               // m/x
)

// sign tells how the additive term combines with the multiplicative part p.
type sign uint8

const (
	signPlus  sign = iota // p + a
	signMinus             // p - a
	signRev               // a - p
)

func (k Kind) split() (family, sign) {
	switch k {
	case KindAdd:
		return famShift, signPlus
	case KindSub:
		return famShift, signMinus
	case KindRevSub:
		return famShift, signRev
	case KindMul:
		return famScale, signPlus
	case KindDiv:
		return famDivide, signPlus
	case KindRevDiv:
		return famInvert, signPlus
	case KindFMA:
		return famFMA, signPlus
	case KindFMASub:
		return famFMA, signMinus
	case KindFMARevSub:
		return famFMA, signRev
	case KindFDA:
		return famFDA, signPlus
	case KindFDASub:
		return famFDA, signMinus
	case KindFDARevSub:
		return famFDA, signRev
	case KindFDAInv:
		return famFDAInv, signPlus
	case KindFDAInvSub:
		return famFDAInv, signMinus
	case KindFDAInvRevSub:
		return famFDAInv, signRev
	}
	panic("lineal: invalid kind " + k.String())
}

// kindOf is the inverse of Kind.split for the additive families.
func kindOf(f family, s sign) Kind {
	var base Kind
	switch f {
	case famShift:
		base = KindAdd
	case famFMA:
		base = KindFMA
	case famFDA:
		base = KindFDA
	case famFDAInv:
		base = KindFDAInv
	default:
		panic("lineal: family has no sign variants")
	}
	return base + Kind(s)
}

// Expr is an unevaluated scalar operation over an Operand. It is immutable
// and holds x by reference.
type Expr struct {
	kind   Kind
	x      Operand
	mul    Scalar
	add    Scalar
	dtype  DType
	orient Orientation
}

func newExpr(kind Kind, x Operand, mul, add Scalar) *Expr {
	e := &Expr{kind: kind, x: x, mul: mul, add: add, orient: x.Orientation()}
	switch f, _ := kind.split(); f {
	case famShift:
		e.dtype = PreciseType(x.DType(), add.dtype)
	case famScale, famDivide, famInvert:
		e.dtype = PreciseType(x.DType(), mul.dtype)
	default:
		e.dtype = PreciseType(x.DType(), mul.dtype, add.dtype)
	}
	return e
}

// Kind returns the operation e applies.
func (e *Expr) Kind() Kind {
	return e.kind
}

// Operand returns the operand e is applied to.
func (e *Expr) Operand() Operand {
	return e.x
}

// Multiplier returns m. It is the zero Scalar for additive kinds.
func (e *Expr) Multiplier() Scalar {
	return e.mul
}

// Addend returns a. It is the zero Scalar for multiplicative kinds.
func (e *Expr) Addend() Scalar {
	return e.add
}

// DType returns the element type e evaluates to.
func (e *Expr) DType() DType {
	return e.dtype
}

// Orientation returns the orientation of the operand.
func (e *Expr) Orientation() Orientation {
	return e.orient
}

// Len returns the length of the operand.
func (e *Expr) Len() int {
	return e.x.Len()
}

// IsScalarAddition reports whether e only adds or subtracts a scalar.
func (e *Expr) IsScalarAddition() bool {
	f, _ := e.kind.split()
	return f == famShift
}

// IsScalarMultiplicative reports whether e only multiplies or divides by a
// scalar.
func (e *Expr) IsScalarMultiplicative() bool {
	f, _ := e.kind.split()
	return f == famScale || f == famDivide || f == famInvert
}

// IsFused reports whether e combines a multiplicative and an additive part.
func (e *Expr) IsFused() bool {
	f, _ := e.kind.split()
	return f >= famFMA
}

// Base returns the first operand below e that is not an *Expr.
func (e *Expr) Base() Operand {
	x := e.x
	for {
		inner, ok := x.(*Expr)
		if !ok {
			return x
		}
		x = inner.x
	}
}

// Depth returns the number of nested nodes from e down to its base, 1 when e
// sits directly on a vector.
func (e *Expr) Depth() int {
	if inner, ok := e.x.(*Expr); ok {
		return inner.Depth() + 1
	}
	return 1
}

// Elem evaluates element i in e.DType().
func (e *Expr) Elem(i int) Scalar {
	switch e.dtype {
	case Float64:
		return ScalarOf(evalAt[float64](e, i))
	case Float32:
		return ScalarOf(evalAt[float32](e, i))
	case Int64:
		return ScalarOf(evalAt[int64](e, i))
	case Int32:
		return ScalarOf(evalAt[int32](e, i))
	case Int16:
		return ScalarOf(evalAt[int16](e, i))
	case Int8:
		return ScalarOf(evalAt[int8](e, i))
	case Uint64:
		return ScalarOf(evalAt[uint64](e, i))
	case Uint32:
		return ScalarOf(evalAt[uint32](e, i))
	case Uint16:
		return ScalarOf(evalAt[uint16](e, i))
	case Uint8:
		return ScalarOf(evalAt[uint8](e, i))
	}
	panic("lineal: expression of invalid dtype")
}

// String renders e as a formula, e.g. "(2*row<float64>[3] + 1)".
func (e *Expr) String() string {
	x := fmt.Sprint(e.x)
	m, a := e.mul.String(), e.add.String()
	switch e.kind {
	case KindAdd:
		return "(" + x + " + " + a + ")"
	case KindSub:
		return "(" + x + " - " + a + ")"
	case KindRevSub:
		return "(" + a + " - " + x + ")"
	case KindMul:
		return "(" + m + "*" + x + ")"
	case KindDiv:
		return "(" + x + "/" + m + ")"
	case KindRevDiv:
		return "(" + m + "/" + x + ")"
	case KindFMA:
		return "(" + m + "*" + x + " + " + a + ")"
	case KindFMASub:
		return "(" + m + "*" + x + " - " + a + ")"
	case KindFMARevSub:
		return "(" + a + " - " + m + "*" + x + ")"
	case KindFDA:
		return "(" + x + "/" + m + " + " + a + ")"
	case KindFDASub:
		return "(" + x + "/" + m + " - " + a + ")"
	case KindFDARevSub:
		return "(" + a + " - " + x + "/" + m + ")"
	case KindFDAInv:
		return "(" + m + "/" + x + " + " + a + ")"
	case KindFDAInvSub:
		return "(" + m + "/" + x + " - " + a + ")"
	case KindFDAInvRevSub:
		return "(" + a + " - " + m + "/" + x + ")"
	}
	return "(" + e.kind.String() + " " + x + ")"
}
