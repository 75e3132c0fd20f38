package hwy

import (
	"fmt"
	"unsafe"
)

// Packed describes how an element type maps onto a register: the register
// width, the width of one lane and how many lanes fit. Without SIMD the
// descriptor is a single scalar lane (Lanes == 1, RegisterBits == LaneBits).
type Packed struct {
	RegisterBits int
	LaneBits     int
	Lanes        int
}

// Batched reports whether more than one lane is processed per step.
func (p Packed) Batched() bool {
	return p.Lanes > 1
}

func (p Packed) String() string {
	return fmt.Sprintf("%dx%dbit/%dbit", p.Lanes, p.LaneBits, p.RegisterBits)
}

// PackedOf returns the descriptor for T on the widest register detected at
// startup.
func PackedOf[T Lanes]() Packed {
	return PackedFor[T](ScalableTag[T]{})
}

// PackedFor returns the descriptor for T on the register described by tag.
// A tag with no width, or one narrower than T, yields a scalar lane.
func PackedFor[T Lanes](tag Tag) Packed {
	var dummy T
	laneBits := int(unsafe.Sizeof(dummy)) * 8
	registerBits := tag.Width() * 8
	if registerBits < laneBits {
		return Packed{RegisterBits: laneBits, LaneBits: laneBits, Lanes: 1}
	}
	return Packed{RegisterBits: registerBits, LaneBits: laneBits, Lanes: registerBits / laneBits}
}
