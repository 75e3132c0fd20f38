// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import "github.com/go-lineal/lineal/hwy"

// BaseMapTo applies an element-wise function to x and writes the result to
// dst: dst[i] = f(x[i]).
//
// vf computes f for one batch of lanes and sf computes it for a single
// element; the two must agree exactly for results to be independent of the
// batch width. If the slices have different lengths, the operation uses the
// minimum length.
func BaseMapTo[T hwy.Lanes](dst, x []T, vf func(hwy.Vec[T]) hwy.Vec[T], sf func(T) T) {
	MapToLanes(dst, x, hwy.MaxLanes[T](), vf, sf)
}

// MapToLanes is BaseMapTo with an explicit batch width.
func MapToLanes[T hwy.Lanes](dst, x []T, lanes int, vf func(hwy.Vec[T]) hwy.Vec[T], sf func(T) T) {
	n := min(len(dst), len(x))
	if lanes <= 1 {
		for i := range n {
			dst[i] = sf(x[i])
		}
		return
	}

	hwy.ProcessWithTailN(n, lanes,
		func(offset int) {
			vf(hwy.LoadN(x[offset:], lanes)).Store(dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = sf(x[i])
			}
		},
	)
}

// BaseScaleTo performs scalar multiplication: dst[i] = s[i] * c.
//
// Example:
//
//	dst := make([]float64, 4)
//	BaseScaleTo(dst, 2, []float64{1, 2, 3, 4})  // dst is now {2, 4, 6, 8}
func BaseScaleTo[T hwy.Lanes](dst []T, c T, s []T) {
	vc := hwy.Set(c)
	BaseMapTo(dst, s,
		func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(v, vc) },
		func(x T) T { return x * c },
	)
}

// BaseAddConstTo performs scalar addition: dst[i] = s[i] + c.
//
// Example:
//
//	dst := make([]float64, 4)
//	BaseAddConstTo(dst, 10, []float64{1, 2, 3, 4})  // dst is now {11, 12, 13, 14}
func BaseAddConstTo[T hwy.Lanes](dst []T, c T, s []T) {
	vc := hwy.Set(c)
	BaseMapTo(dst, s,
		func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(v, vc) },
		func(x T) T { return x + c },
	)
}

// BaseMulAddConstTo computes dst[i] = x[i]*m + a.
//
// The product is rounded before the addition on every path, so the result
// never depends on whether the platform fuses multiply-add.
//
// Example:
//
//	dst := make([]float64, 3)
//	BaseMulAddConstTo(dst, []float64{1, 2, 3}, 2, 1)  // dst is now {3, 5, 7}
func BaseMulAddConstTo[T hwy.Lanes](dst, x []T, m, a T) {
	vm, va := hwy.Set(m), hwy.Set(a)
	BaseMapTo(dst, x,
		func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(hwy.Mul(v, vm), va) },
		func(x T) T { return T(x*m) + a },
	)
}
