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

import "unsafe"

// Tag represents a register size that determines how many lanes
// are used in batched operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.),
	// or 0 when no register is available.
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "128bit", etc.)
	Name() string
}

// ScalableTag adapts to the widest SIMD available at runtime.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	p := hwy.PackedFor[float32](tag)
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes, or 0 in scalar mode.
func (ScalableTag[T]) Width() int {
	if currentLevel == DispatchScalar {
		return 0
	}
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// ScalarTag describes the absence of SIMD registers: one lane per batch.
type ScalarTag[T Lanes] struct{}

// Width returns 0: there is no register.
func (ScalarTag[T]) Width() int {
	return 0
}

// Name returns "scalar".
func (ScalarTag[T]) Name() string {
	return "scalar"
}

// MaxLanes returns 1.
func (ScalarTag[T]) MaxLanes() int {
	return 1
}

// FixedTag128 forces 128-bit batches (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// FixedTag256 forces 256-bit batches (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	var dummy T
	return 32 / int(unsafe.Sizeof(dummy))
}

// FixedTag512 forces 512-bit batches (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	var dummy T
	return 64 / int(unsafe.Sizeof(dummy))
}
