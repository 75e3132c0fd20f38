// Package vec provides the slice-level reductions and element-wise maps that
// lineal's evaluators are built on. Every entry point processes full batches
// of hwy.MaxLanes elements first and then the remainder one element at a time.
package vec

import "github.com/go-lineal/lineal/hwy"

// Sum returns the sum of the elements of v.
func Sum[T hwy.Lanes](v []T) T {
	return BaseSum(v)
}

// Dot returns Σ a[i]*b[i] over the first min(len(a), len(b)) elements.
func Dot[T hwy.Lanes](a, b []T) T {
	return BaseDot(a, b)
}

// MapTo writes sf(x[i]) to dst[i], using vf for full batches.
func MapTo[T hwy.Lanes](dst, x []T, vf func(hwy.Vec[T]) hwy.Vec[T], sf func(T) T) {
	BaseMapTo(dst, x, vf, sf)
}
