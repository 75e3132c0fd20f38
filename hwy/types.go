// Package hwy provides the packed (SIMD-width) building blocks used by lineal:
// runtime CPU capability detection, the mapping from an element type to the
// lanes of the widest register available, aligned allocation and portable
// lane-wise operations with a scalar fallback.
//
// Basic usage:
//
//	import "github.com/go-lineal/lineal/hwy"
//
//	p := hwy.PackedOf[float64]()
//	acc := hwy.Zero[float64]()
//	for i := 0; i+p.Lanes <= len(data); i += p.Lanes {
//		acc = hwy.Add(acc, hwy.Load(data[i:]))
//	}
//	total := hwy.ReduceSum(acc)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding one register's worth of lanes.
// In base (scalar) mode it wraps a slice.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
