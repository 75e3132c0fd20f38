package lineal

import (
	"github.com/go-lineal/lineal/hwy/contrib/vec"
)

// Sum returns Σ x[i] in x.DType().
//
// A raw vector is reduced with vec.Sum: full batches of hwy.MaxLanes
// elements are accumulated lane-wise and reduced first, then the remaining
// elements are added in index order. An *Expr is evaluated and summed element
// by element.
func Sum(x Operand) Scalar {
	switch x.DType() {
	case Float64:
		return ScalarOf(sumPrefix[float64](x, x.Len()))
	case Float32:
		return ScalarOf(sumPrefix[float32](x, x.Len()))
	case Int64:
		return ScalarOf(sumPrefix[int64](x, x.Len()))
	case Int32:
		return ScalarOf(sumPrefix[int32](x, x.Len()))
	case Int16:
		return ScalarOf(sumPrefix[int16](x, x.Len()))
	case Int8:
		return ScalarOf(sumPrefix[int8](x, x.Len()))
	case Uint64:
		return ScalarOf(sumPrefix[uint64](x, x.Len()))
	case Uint32:
		return ScalarOf(sumPrefix[uint32](x, x.Len()))
	case Uint16:
		return ScalarOf(sumPrefix[uint16](x, x.Len()))
	case Uint8:
		return ScalarOf(sumPrefix[uint8](x, x.Len()))
	}
	return Scalar{}
}

// SumOf returns Σ v[i].
func SumOf[T Number](v *Vector[T]) T {
	return vec.Sum(v.Data())
}
