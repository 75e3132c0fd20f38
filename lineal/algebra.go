package lineal

// step is a scalar operation applied to an existing operand.
type step uint8

const (
	stepAdd    step = iota // x + t
	stepSub                // x - t
	stepRevSub             // t - x
	stepMul                // x * t
	stepDiv                // x / t
	stepRevDiv             // t / x
)

// Value is the set of Go types accepted as scalar arguments: the element
// types, plus int and uint which are taken as int64 and uint64.
type Value interface {
	Number | int | uint
}

func scalarOf[S Value](s S) Scalar {
	sc, err := toScalar(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// Add returns x + s.
func Add[S Value](x Operand, s S) *Expr {
	return compose(x, stepAdd, scalarOf(s))
}

// Sub returns x - s.
func Sub[S Value](x Operand, s S) *Expr {
	return compose(x, stepSub, scalarOf(s))
}

// Mul returns x * s.
func Mul[S Value](x Operand, s S) *Expr {
	return compose(x, stepMul, scalarOf(s))
}

// Div returns x / s.
func Div[S Value](x Operand, s S) *Expr {
	return compose(x, stepDiv, scalarOf(s))
}

// ScalarAdd returns s + x, which is built as x + s.
func ScalarAdd[S Value](s S, x Operand) *Expr {
	return compose(x, stepAdd, scalarOf(s))
}

// ScalarSub returns s - x.
func ScalarSub[S Value](s S, x Operand) *Expr {
	return compose(x, stepRevSub, scalarOf(s))
}

// ScalarMul returns s * x, which is built as x * s.
func ScalarMul[S Value](s S, x Operand) *Expr {
	return compose(x, stepMul, scalarOf(s))
}

// ScalarDiv returns s / x.
func ScalarDiv[S Value](s S, x Operand) *Expr {
	return compose(x, stepRevDiv, scalarOf(s))
}

// AddScalar is Add for a prebuilt Scalar.
func AddScalar(x Operand, s Scalar) *Expr {
	return compose(x, stepAdd, s)
}

// SubScalar is Sub for a prebuilt Scalar.
func SubScalar(x Operand, s Scalar) *Expr {
	return compose(x, stepSub, s)
}

// MulScalar is Mul for a prebuilt Scalar.
func MulScalar(x Operand, s Scalar) *Expr {
	return compose(x, stepMul, s)
}

// DivScalar is Div for a prebuilt Scalar.
func DivScalar(x Operand, s Scalar) *Expr {
	return compose(x, stepDiv, s)
}

// RevSubScalar is ScalarSub for a prebuilt Scalar.
func RevSubScalar(s Scalar, x Operand) *Expr {
	return compose(x, stepRevSub, s)
}

// RevDivScalar is ScalarDiv for a prebuilt Scalar.
func RevDivScalar(s Scalar, x Operand) *Expr {
	return compose(x, stepRevDiv, s)
}

// compose applies st with scalar t to x. Over a vector this creates a node;
// over an *Expr the two operations are rewritten into one node where
// possible.
func compose(x Operand, st step, t Scalar) *Expr {
	if !t.dtype.IsValid() {
		panic("lineal: scalar operand of invalid dtype")
	}
	if e, ok := x.(*Expr); ok {
		return e.fuse(st, t)
	}
	switch st {
	case stepAdd:
		return newExpr(KindAdd, x, Scalar{}, t)
	case stepSub:
		return newExpr(KindSub, x, Scalar{}, t)
	case stepRevSub:
		return newExpr(KindRevSub, x, Scalar{}, t)
	case stepMul:
		return newExpr(KindMul, x, t, Scalar{})
	case stepDiv:
		return newExpr(KindDiv, x, t, Scalar{})
	case stepRevDiv:
		return newExpr(KindRevDiv, x, t, Scalar{})
	}
	panic("lineal: invalid step")
}

func (e *Expr) fuse(st step, t Scalar) *Expr {
	f, sg := e.kind.split()
	v, m, a := e.x, e.mul, e.add

	// Scalars are folded in the dtype of the node being built, never in the
	// narrower dtype of the scalars alone.
	d := PreciseType(e.dtype, t.dtype)
	m, a, t = widen(m, d), widen(a, d), t.As(d)

	switch f {
	case famScale, famDivide, famInvert:
		return fuseMultiplicative(f, v, m, st, t)
	}

	switch st {
	case stepAdd, stepSub, stepRevSub:
		ns, na := shift(sg, st, a, t)
		return newExpr(kindOf(f, ns), v, m, na)

	case stepMul:
		switch f {
		case famShift:
			// (v ± a)*t = t*v ± a*t
			return newExpr(kindOf(famFMA, sg), v, t, a.times(t))
		case famFDA:
			// (v/m ± a)*t = (t/m)*v ± a*t
			return newExpr(kindOf(famFMA, sg), v, t.over(m), a.times(t))
		default:
			return newExpr(kindOf(f, sg), v, m.times(t), a.times(t))
		}

	case stepDiv:
		switch f {
		case famShift:
			return newExpr(kindOf(famFDA, sg), v, t, a.over(t))
		case famFDA:
			return newExpr(kindOf(famFDA, sg), v, m.times(t), a.over(t))
		default:
			return newExpr(kindOf(f, sg), v, m.over(t), a.over(t))
		}

	case stepRevDiv:
		// No single node computes t/(p ± a).
		return newExpr(KindRevDiv, e, t, Scalar{})
	}
	panic("lineal: invalid step")
}

// widen converts s to d. The zero Scalar of one-sided kinds is kept as is.
func widen(s Scalar, d DType) Scalar {
	if !s.dtype.IsValid() {
		return s
	}
	return s.As(d)
}

// shift folds an additive step into the addend a of a node with sign sg.
func shift(sg sign, st step, a, t Scalar) (sign, Scalar) {
	switch sg {
	case signPlus: // p + a
		switch st {
		case stepAdd:
			return signPlus, a.plus(t)
		case stepSub:
			return signPlus, a.minus(t)
		default:
			return signRev, t.minus(a)
		}
	case signMinus: // p - a
		switch st {
		case stepAdd:
			return signPlus, t.minus(a)
		case stepSub:
			return signMinus, a.plus(t)
		default:
			return signRev, t.plus(a)
		}
	default: // a - p
		switch st {
		case stepAdd:
			return signRev, a.plus(t)
		case stepSub:
			return signRev, a.minus(t)
		default:
			return signPlus, t.minus(a)
		}
	}
}

// fuseMultiplicative applies st to v*s, v/s or s/v.
func fuseMultiplicative(f family, v Operand, s Scalar, st step, t Scalar) *Expr {
	switch st {
	case stepAdd, stepSub, stepRevSub:
		sg := signPlus
		if st == stepSub {
			sg = signMinus
		} else if st == stepRevSub {
			sg = signRev
		}
		fused := famFMA
		if f == famDivide {
			fused = famFDA
		} else if f == famInvert {
			fused = famFDAInv
		}
		return newExpr(kindOf(fused, sg), v, s, t)
	}

	switch f {
	case famScale:
		switch st {
		case stepMul:
			return newExpr(KindMul, v, s.times(t), Scalar{})
		case stepDiv:
			return newExpr(KindMul, v, s.over(t), Scalar{})
		default:
			return newExpr(KindRevDiv, v, t.over(s), Scalar{})
		}
	case famDivide:
		switch st {
		case stepMul:
			return newExpr(KindMul, v, t.over(s), Scalar{})
		case stepDiv:
			return newExpr(KindDiv, v, s.times(t), Scalar{})
		default:
			return newExpr(KindRevDiv, v, t.times(s), Scalar{})
		}
	default:
		switch st {
		case stepMul:
			return newExpr(KindRevDiv, v, s.times(t), Scalar{})
		case stepDiv:
			return newExpr(KindRevDiv, v, s.over(t), Scalar{})
		default:
			return newExpr(KindMul, v, t.over(s), Scalar{})
		}
	}
}
