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

// BaseDot computes the dot product (inner product) of two vectors using hwy primitives.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	result := BaseDot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func BaseDot[T hwy.Lanes](a, b []T) T {
	return DotLanes(a, b, hwy.MaxLanes[T]())
}

// DotLanes is BaseDot with an explicit batch width.
func DotLanes[T hwy.Lanes](a, b []T, lanes int) T {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	n := min(len(a), len(b))
	var result T
	var i int
	if lanes > 1 {
		sum := hwy.ZeroN[T](lanes)

		// Process full vectors
		for i = 0; i+lanes <= n; i += lanes {
			va := hwy.LoadN(a[i:], lanes)
			vb := hwy.LoadN(b[i:], lanes)
			prod := hwy.Mul(va, vb)
			sum = hwy.Add(sum, prod)
		}

		// Reduce vector sum to scalar
		result = hwy.ReduceSum(sum)
	}

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result += T(a[i] * b[i])
	}

	return result
}
