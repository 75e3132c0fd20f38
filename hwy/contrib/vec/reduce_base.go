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

// BaseSum computes the sum of all elements in a slice using hwy primitives.
//
// Returns 0 if the slice is empty.
//
// Full batches are accumulated lane-wise into a single accumulator which is
// then reduced to a scalar; the remaining elements are added to that scalar
// one at a time, in index order. In scalar mode the whole slice is summed
// sequentially.
//
// Example:
//
//	data := []float64{1, 2, 3, 4}
//	result := BaseSum(data)  // 1 + 2 + 3 + 4 = 10
func BaseSum[T hwy.Lanes](v []T) T {
	return SumLanes(v, hwy.MaxLanes[T]())
}

// SumLanes is BaseSum with an explicit batch width. A width of 1 (or less)
// sums sequentially.
func SumLanes[T hwy.Lanes](v []T, lanes int) T {
	if len(v) == 0 {
		return 0
	}

	var result T
	var i int
	if lanes > 1 {
		sum := hwy.ZeroN[T](lanes)

		// Process full vectors
		for i = 0; i+lanes <= len(v); i += lanes {
			va := hwy.LoadN(v[i:], lanes)
			sum = hwy.Add(sum, va)
		}

		// Reduce vector sum to scalar
		result = hwy.ReduceSum(sum)
	}

	// Handle tail elements with scalar code
	for ; i < len(v); i++ {
		result += v[i]
	}

	return result
}
