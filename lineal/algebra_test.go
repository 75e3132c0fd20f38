package lineal

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(1e-9, 1e-12)

// evalAll evaluates every element of x as float64.
func evalAll(x Operand) []float64 {
	out := make([]float64, x.Len())
	for i := range out {
		out[i] = Eval[float64](x, i)
	}
	return out
}

func TestScenarioFusedNode(t *testing.T) {
	v := WrapVector(Col, []float64{2, 4, 6})

	scaled := Mul(v, 3.0)
	require.True(t, scaled.IsScalarMultiplicative())
	require.False(t, scaled.IsScalarAddition())

	expr := Add(scaled, 1.0)
	require.Equal(t, 7.0, Eval[float64](expr, 0))
	require.Equal(t, 13.0, Eval[float64](expr, 1))
	require.Equal(t, 19.0, Eval[float64](expr, 2))
	require.Equal(t, KindFMA, expr.Kind())
	require.True(t, expr.IsFused())
	require.Equal(t, 1, expr.Depth())
	require.Same(t, v, expr.Base())

	more := Add(expr, 5.0)
	require.Equal(t, 1, more.Depth())
	require.Equal(t, KindFMA, more.Kind())
	require.Equal(t, []float64{12, 18, 24}, evalAll(more))
	require.Equal(t, Col, more.Orientation())
}

func TestFusionTable(t *testing.T) {
	v := WrapVector(Row, []float64{1.5, -2, 3.25, 4, 0.5})

	add := func(x Operand) *Expr { return Add(x, 4.0) }
	sub := func(x Operand) *Expr { return Sub(x, 4.0) }
	rsub := func(x Operand) *Expr { return ScalarSub(4.0, x) }
	mul := func(x Operand) *Expr { return Mul(x, 4.0) }
	div := func(x Operand) *Expr { return Div(x, 4.0) }
	rdiv := func(x Operand) *Expr { return ScalarDiv(4.0, x) }

	nodes := map[string]*Expr{
		"Add":          Add(v, 2.0),
		"Sub":          Sub(v, 2.0),
		"RevSub":       ScalarSub(2.0, v),
		"Mul":          Mul(v, 2.0),
		"Div":          Div(v, 2.0),
		"RevDiv":       ScalarDiv(2.0, v),
		"FMA":          Add(Mul(v, 2.0), 3.0),
		"FMASub":       Sub(Mul(v, 2.0), 3.0),
		"FMARevSub":    ScalarSub(3.0, Mul(v, 2.0)),
		"FDA":          Add(Div(v, 2.0), 3.0),
		"FDASub":       Sub(Div(v, 2.0), 3.0),
		"FDARevSub":    ScalarSub(3.0, Div(v, 2.0)),
		"FDAInv":       Add(ScalarDiv(2.0, v), 3.0),
		"FDAInvSub":    Sub(ScalarDiv(2.0, v), 3.0),
		"FDAInvRevSub": ScalarSub(3.0, ScalarDiv(2.0, v)),
	}
	for name, e := range nodes {
		require.Equal(t, name, e.Kind().String())
		require.Equal(t, 1, e.Depth(), name)
	}

	tests := []struct {
		node string
		op   string
		then func(Operand) *Expr
		kind Kind
		mul  float64
		add  float64
	}{
		{"Add", "+t", add, KindAdd, 0, 6},
		{"Add", "-t", sub, KindAdd, 0, -2},
		{"Add", "t-", rsub, KindRevSub, 0, 2},
		{"Add", "*t", mul, KindFMA, 4, 8},
		{"Add", "/t", div, KindFDA, 4, 0.5},
		{"Sub", "+t", add, KindAdd, 0, 2},
		{"Sub", "-t", sub, KindSub, 0, 6},
		{"Sub", "t-", rsub, KindRevSub, 0, 6},
		{"Sub", "*t", mul, KindFMASub, 4, 8},
		{"Sub", "/t", div, KindFDASub, 4, 0.5},
		{"RevSub", "+t", add, KindRevSub, 0, 6},
		{"RevSub", "-t", sub, KindRevSub, 0, -2},
		{"RevSub", "t-", rsub, KindAdd, 0, 2},
		{"RevSub", "*t", mul, KindFMARevSub, 4, 8},
		{"RevSub", "/t", div, KindFDARevSub, 4, 0.5},
		{"Mul", "+t", add, KindFMA, 2, 4},
		{"Mul", "-t", sub, KindFMASub, 2, 4},
		{"Mul", "t-", rsub, KindFMARevSub, 2, 4},
		{"Mul", "*t", mul, KindMul, 8, 0},
		{"Mul", "/t", div, KindMul, 0.5, 0},
		{"Mul", "t/", rdiv, KindRevDiv, 2, 0},
		{"Div", "+t", add, KindFDA, 2, 4},
		{"Div", "-t", sub, KindFDASub, 2, 4},
		{"Div", "t-", rsub, KindFDARevSub, 2, 4},
		{"Div", "*t", mul, KindMul, 2, 0},
		{"Div", "/t", div, KindDiv, 8, 0},
		{"Div", "t/", rdiv, KindRevDiv, 8, 0},
		{"RevDiv", "+t", add, KindFDAInv, 2, 4},
		{"RevDiv", "-t", sub, KindFDAInvSub, 2, 4},
		{"RevDiv", "t-", rsub, KindFDAInvRevSub, 2, 4},
		{"RevDiv", "*t", mul, KindRevDiv, 8, 0},
		{"RevDiv", "/t", div, KindRevDiv, 0.5, 0},
		{"RevDiv", "t/", rdiv, KindMul, 2, 0},
		{"FMA", "+t", add, KindFMA, 2, 7},
		{"FMA", "-t", sub, KindFMA, 2, -1},
		{"FMA", "t-", rsub, KindFMARevSub, 2, 1},
		{"FMA", "*t", mul, KindFMA, 8, 12},
		{"FMA", "/t", div, KindFMA, 0.5, 0.75},
		{"FMASub", "+t", add, KindFMA, 2, 1},
		{"FMASub", "-t", sub, KindFMASub, 2, 7},
		{"FMASub", "t-", rsub, KindFMARevSub, 2, 7},
		{"FMASub", "*t", mul, KindFMASub, 8, 12},
		{"FMASub", "/t", div, KindFMASub, 0.5, 0.75},
		{"FMARevSub", "+t", add, KindFMARevSub, 2, 7},
		{"FMARevSub", "-t", sub, KindFMARevSub, 2, -1},
		{"FMARevSub", "t-", rsub, KindFMA, 2, 1},
		{"FMARevSub", "*t", mul, KindFMARevSub, 8, 12},
		{"FMARevSub", "/t", div, KindFMARevSub, 0.5, 0.75},
		{"FDA", "+t", add, KindFDA, 2, 7},
		{"FDA", "-t", sub, KindFDA, 2, -1},
		{"FDA", "t-", rsub, KindFDARevSub, 2, 1},
		{"FDA", "*t", mul, KindFMA, 2, 12},
		{"FDA", "/t", div, KindFDA, 8, 0.75},
		{"FDASub", "+t", add, KindFDA, 2, 1},
		{"FDASub", "-t", sub, KindFDASub, 2, 7},
		{"FDASub", "t-", rsub, KindFDARevSub, 2, 7},
		{"FDASub", "*t", mul, KindFMASub, 2, 12},
		{"FDASub", "/t", div, KindFDASub, 8, 0.75},
		{"FDARevSub", "+t", add, KindFDARevSub, 2, 7},
		{"FDARevSub", "-t", sub, KindFDARevSub, 2, -1},
		{"FDARevSub", "t-", rsub, KindFDA, 2, 1},
		{"FDARevSub", "*t", mul, KindFMARevSub, 2, 12},
		{"FDARevSub", "/t", div, KindFDARevSub, 8, 0.75},
		{"FDAInv", "+t", add, KindFDAInv, 2, 7},
		{"FDAInv", "-t", sub, KindFDAInv, 2, -1},
		{"FDAInv", "t-", rsub, KindFDAInvRevSub, 2, 1},
		{"FDAInv", "*t", mul, KindFDAInv, 8, 12},
		{"FDAInv", "/t", div, KindFDAInv, 0.5, 0.75},
		{"FDAInvSub", "+t", add, KindFDAInv, 2, 1},
		{"FDAInvSub", "-t", sub, KindFDAInvSub, 2, 7},
		{"FDAInvSub", "t-", rsub, KindFDAInvRevSub, 2, 7},
		{"FDAInvSub", "*t", mul, KindFDAInvSub, 8, 12},
		{"FDAInvSub", "/t", div, KindFDAInvSub, 0.5, 0.75},
		{"FDAInvRevSub", "+t", add, KindFDAInvRevSub, 2, 7},
		{"FDAInvRevSub", "-t", sub, KindFDAInvRevSub, 2, -1},
		{"FDAInvRevSub", "t-", rsub, KindFDAInv, 2, 1},
		{"FDAInvRevSub", "*t", mul, KindFDAInvRevSub, 8, 12},
		{"FDAInvRevSub", "/t", div, KindFDAInvRevSub, 0.5, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.node+tt.op, func(t *testing.T) {
			node := nodes[tt.node]
			got := tt.then(node)
			require.Equal(t, tt.kind, got.Kind())
			require.Equal(t, 1, got.Depth())
			require.Same(t, v, got.Operand())
			require.Equal(t, tt.mul, got.Multiplier().Float64())
			require.Equal(t, tt.add, got.Addend().Float64())

			// The rewritten node computes the same values as the
			// operation applied to the evaluated node.
			want := make([]float64, v.Len())
			before := evalAll(node)
			for i := range want {
				want[i] = applyFloat(tt.op, before[i], 4)
			}
			if diff := cmp.Diff(want, evalAll(got), approx); diff != "" {
				t.Errorf("%s %s: values mismatch (-want +got):\n%s", tt.node, tt.op, diff)
			}
		})
	}
}

// Dividing a scalar by a node with an additive part cannot be fused and nests
// instead.
func TestReverseDivisionNests(t *testing.T) {
	v := WrapVector(Col, []float64{2, 3, 5})
	for _, inner := range []*Expr{
		Add(v, 1.0),
		Sub(v, 1.0),
		ScalarSub(1.0, v),
		Add(Mul(v, 2.0), 1.0),
		Add(Div(v, 2.0), 1.0),
		Add(ScalarDiv(2.0, v), 1.0),
	} {
		t.Run(inner.Kind().String(), func(t *testing.T) {
			got := ScalarDiv(6.0, inner)
			require.Equal(t, KindRevDiv, got.Kind())
			require.Equal(t, 2, got.Depth())
			require.Same(t, inner, got.Operand())
			require.Same(t, v, got.Base())

			before := evalAll(inner)
			for i, x := range evalAll(got) {
				require.InDelta(t, 6/before[i], x, 1e-12)
			}
		})
	}
}

func applyFloat(op string, x, t float64) float64 {
	switch op {
	case "+t":
		return x + t
	case "-t":
		return x - t
	case "t-":
		return t - x
	case "*t":
		return x * t
	case "/t":
		return x / t
	case "t/":
		return t / x
	}
	panic("unknown op " + op)
}

// Every chain of up to three scalar operations evaluates like the operations
// applied one after another.
func TestFusionEquivalence(t *testing.T) {
	v := WrapVector(Row, []float64{0.75, -1.25, 2, 3.5, -4.125, 9})
	ops := []string{"+t", "-t", "t-", "*t", "/t", "t/"}
	scalars := []float64{1.5, -2.5, 0.5}

	build := func(x Operand, op string, t float64) *Expr {
		switch op {
		case "+t":
			return Add(x, t)
		case "-t":
			return Sub(x, t)
		case "t-":
			return ScalarSub(t, x)
		case "*t":
			return Mul(x, t)
		case "/t":
			return Div(x, t)
		}
		return ScalarDiv(t, x)
	}

	for _, o1 := range ops {
		for _, o2 := range ops {
			for _, o3 := range ops {
				name := fmt.Sprintf("%s,%s,%s", o1, o2, o3)
				t.Run(name, func(t *testing.T) {
					var x Operand = v
					want := append([]float64(nil), v.Data()...)
					for k, op := range []string{o1, o2, o3} {
						x = build(x, op, scalars[k])
						for i := range want {
							want[i] = applyFloat(op, want[i], scalars[k])
						}
					}
					if diff := cmp.Diff(want, evalAll(x), approx); diff != "" {
						t.Errorf("%s: (-want +got):\n%s", name, diff)
					}
					require.Same(t, v, x.(*Expr).Base())
				})
			}
		}
	}
}

func TestIdentities(t *testing.T) {
	v := WrapVector(Col, []float64{0.1, -7.3, 1e6, 3})

	require.Equal(t, v.Data(), evalAll(Add(v, 0.0)))

	for _, s := range []float64{3, -0.25, 1e-3} {
		if diff := cmp.Diff(v.Data(), evalAll(Div(Mul(v, s), s)), approx); diff != "" {
			t.Errorf("v*%v/%v: (-want +got):\n%s", s, s, diff)
		}
	}
}

func TestPromotionInNodes(t *testing.T) {
	ints := WrapVector(Row, []int32{1, 2, 3})

	half := Mul(ints, 0.5)
	require.Equal(t, Float64, half.DType())
	require.Equal(t, []float64{0.5, 1, 1.5}, evalAll(half))

	wide := Add(ints, int64(1))
	require.Equal(t, Int64, wide.DType())

	narrow := Add(ints, int8(1))
	require.Equal(t, Int32, narrow.DType())
	require.Equal(t, ScalarOf(int32(4)), narrow.Elem(2))

	// The inner node is evaluated as int32, then converted.
	nested := ScalarDiv(6.0, Add(ints, int32(1)))
	require.Equal(t, Float64, nested.DType())
	require.Equal(t, []float64{3, 2, 1.5}, evalAll(nested))

	single := Mul(WrapVector(Col, []float32{1, 2}), float32(3))
	require.Equal(t, Float32, single.DType())
	require.Equal(t, float32(6), Eval[float32](single, 1))
}

func TestIntegerSemantics(t *testing.T) {
	v := WrapVector(Col, []int64{7, -7, 9})

	require.Equal(t, ScalarOf(int64(3)), Div(v, int64(2)).Elem(0))
	require.Equal(t, ScalarOf(int64(-3)), Div(v, int64(2)).Elem(1))

	// Folds are done in integer arithmetic as written: (v/2)*4 is v*(4/2).
	folded := Mul(Div(v, int64(2)), int64(4))
	require.Equal(t, KindMul, folded.Kind())
	require.Equal(t, ScalarOf(int64(14)), folded.Elem(0))

	zero := ScalarDiv(int64(1), WrapVector(Row, []int64{0}))
	require.Panics(t, func() { zero.Elem(0) })
}

func TestNodesObserveMutation(t *testing.T) {
	data := []float64{1, 2, 3}
	v := WrapVector(Row, data)
	e := Add(Mul(v, 2.0), 1.0)

	require.Equal(t, 5.0, Eval[float64](e, 1))
	v.Set(1, 10)
	require.Equal(t, 21.0, Eval[float64](e, 1))
	data[2] = -1
	require.Equal(t, -1.0, Eval[float64](e, 2))

	// Several nodes may share one vector.
	f := Sub(v, 1.0)
	require.Equal(t, 9.0, Eval[float64](f, 1))
}

func TestExprString(t *testing.T) {
	v := WrapVector(Row, []float64{1, 2, 3})
	require.Equal(t, "(2*row<float64>[3] + 1)", Add(Mul(v, 2.0), 1.0).String())
	require.Equal(t, "(0.5 - row<float64>[3]/4)", ScalarSub(0.5, Div(v, 4.0)).String())
	require.Equal(t, "(3/(row<float64>[3] + 1))", ScalarDiv(3.0, Add(v, 1.0)).String())
}

func TestGoIntScalars(t *testing.T) {
	v := WrapVector(Col, []float32{1, 2})
	e := Add(Mul(v, 2), uint(1))
	require.Equal(t, Float32, e.DType())
	require.Equal(t, float32(5), Eval[float32](e, 1))
}

func TestFoldsUseNodeDType(t *testing.T) {
	t.Run("uint32 with uint8 scalars", func(t *testing.T) {
		data := []uint32{100, 7, 4000000000}
		e := Sub(Add(WrapVector(Col, data), uint8(10)), uint8(20))
		require.Equal(t, Uint32, e.DType())
		for i, x := range data {
			want := x + 10 - 20
			require.Equal(t, want, Eval[uint32](e, i), "element %d", i)
		}
	})

	t.Run("int32 with int8 scalars", func(t *testing.T) {
		data := []int32{3, -5, 7}
		v := WrapVector(Row, data)
		scaled := Mul(Mul(v, int8(100)), int8(100))
		require.Equal(t, Int32, scaled.DType())
		require.Equal(t, int64(10000), scaled.Multiplier().Int64())
		fma := Mul(Add(v, int8(100)), int8(100))
		require.Equal(t, KindFMA, fma.Kind())
		for i, x := range data {
			require.Equal(t, x*100*100, Eval[int32](scaled, i), "element %d", i)
			require.Equal(t, (x+100)*100, Eval[int32](fma, i), "element %d", i)
		}
	})

	t.Run("float64 with float32 scalars", func(t *testing.T) {
		data := []float64{1.5, -2.25, 1e3}
		a, b := float32(0.1), float32(0.2)
		v := WrapVector(Col, data)
		shifted := Add(Add(v, a), b)
		divided := Mul(Div(v, float32(3)), a)
		for i, x := range data {
			want := (x + float64(a)) + float64(b)
			require.InEpsilon(t, want, Eval[float64](shifted, i), 1e-12, "element %d", i)
			want = (x / 3) * float64(a)
			require.InEpsilon(t, want, Eval[float64](divided, i), 1e-12, "element %d", i)
		}
	})
}

func TestInvalidScalarPanics(t *testing.T) {
	v := WrapVector(Row, []float64{1, 2})
	require.PanicsWithValue(t, "lineal: scalar operand of invalid dtype", func() {
		AddScalar(v, Scalar{})
	})
	require.PanicsWithValue(t, "lineal: scalar operand of invalid dtype", func() {
		RevDivScalar(Add(v, 1.0).Multiplier(), v)
	})
}
