package hwy

import (
	"math"
	"unsafe"
)

// This file provides aligned allocation for blocks that the batched loops
// load from and store to.

// largeBlockBytes is the size from which blocks are aligned to a cache line.
const largeBlockBytes = 1024

// Alignment returns the byte alignment used for a block of byteCount bytes:
// the register width (at least 16) for small blocks, and at least 64 for blocks
// of 1024 bytes or more.
func Alignment(byteCount int) int {
	align := max(16, currentWidth)
	if byteCount >= largeBlockBytes {
		align = max(align, 64)
	}
	return align
}

// AlignedSlice allocates n zeroed elements of T whose first element sits on
// an Alignment boundary. It returns nil when the request cannot be
// satisfied: n is negative, the byte size overflows, or the runtime refuses
// the allocation.
func AlignedSlice[T Lanes](n int) (s []T) {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []T{}
	}
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if n > (math.MaxInt-64)/size {
		return nil
	}
	byteCount := n * size
	align := Alignment(byteCount)

	defer func() {
		// makeslice panics on lengths above the runtime limit.
		if recover() != nil {
			s = nil
		}
	}()
	raw := make([]byte, byteCount+align)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	offset := int((uintptr(align) - base%uintptr(align)) % uintptr(align))
	return unsafe.Slice((*T)(unsafe.Pointer(&raw[offset])), n)
}

// IsAlignedTo reports whether the first element of s sits on an align-byte
// boundary. Empty slices are considered aligned.
func IsAlignedTo[T Lanes](s []T, align int) bool {
	if len(s) == 0 || align <= 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(align) == 0
}
