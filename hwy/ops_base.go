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

package hwy

// This file provides the pure Go implementations of the lane operations used
// by the batched reductions and evaluators. Each operation works on one
// register's worth of lanes; the lane count is fixed by the Vec it receives.

// Load creates a vector from the first MaxLanes elements of src.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN creates a vector from the first n elements of src (fewer if src is
// shorter). The returned vector does not alias src.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = min(len(src), n)
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all MaxLanes lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates a vector of n lanes all set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all MaxLanes lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return ZeroN[T](MaxLanes[T]())
}

// ZeroN creates a vector of n zero lanes.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division. Integer lanes follow Go semantics:
// the quotient truncates and a zero divisor panics.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes, lane 0 first.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}
