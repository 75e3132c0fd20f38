package lineal

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/go-lineal/lineal/hwy"
)

// FillPolicy selects what Allocate writes into a new buffer.
type FillPolicy uint8

const (
	// FillNone performs no write. The Go runtime still hands out zeroed
	// memory, but callers should not rely on the contents.
	FillNone FillPolicy = iota
	// FillZeros writes 0 to every element.
	FillZeros
	// FillOnes writes 1 to every element.
	FillOnes
)

func (f FillPolicy) String() string {
	switch f {
	case FillNone:
		return "none"
	case FillZeros:
		return "zeros"
	case FillOnes:
		return "ones"
	}
	return "unknown"
}

// Buffer is a contiguous block of elements that is either owned (allocated
// by Allocate) or borrowed (wrapped with Wrap).
type Buffer[T Number] struct {
	data     []T
	owned    bool
	released bool
}

// Allocate returns an owned buffer of count elements aligned for batched
// loads (see hwy.Alignment), filled according to fill.
func Allocate[T Number](count int, fill FillPolicy) (*Buffer[T], error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if count < 0 {
		return nil, errors.WithStack(&AllocationError{
			Count: count, ElemSize: size, Cause: errors.Errorf("negative count"),
		})
	}
	if count > math.MaxInt/size {
		return nil, errors.WithStack(&AllocationError{
			Count: count, ElemSize: size, Cause: errors.Errorf("size overflows int"),
		})
	}
	data := hwy.AlignedSlice[T](count)
	if data == nil {
		return nil, errors.WithStack(&AllocationError{
			Count: count, ElemSize: size, Cause: errors.Errorf("allocator refused %d bytes", count*size),
		})
	}
	switch fill {
	case FillZeros:
		clear(data)
	case FillOnes:
		for i := range data {
			data[i] = 1
		}
	}
	return &Buffer[T]{data: data, owned: true}, nil
}

// Wrap returns a borrowed buffer over data. The caller keeps data valid for
// as long as the buffer is used; Release never drops it.
func Wrap[T Number](data []T) *Buffer[T] {
	return &Buffer[T]{data: data}
}

// Move transfers ownership to a new Buffer over the same block. b stays
// readable but no longer owns the block, so only the returned buffer can
// release it.
func (b *Buffer[T]) Move() *Buffer[T] {
	moved := &Buffer[T]{data: b.data, owned: b.owned, released: b.released}
	b.owned = false
	return moved
}

// Release drops an owned buffer's block. It does nothing for borrowed or
// moved-from buffers, and nothing the second time.
func (b *Buffer[T]) Release() {
	if !b.owned {
		return
	}
	b.data = nil
	b.owned = false
	b.released = true
}

// At returns element i.
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Set writes element i.
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Len returns the number of elements, 0 after Release.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Owned reports whether b releases its block.
func (b *Buffer[T]) Owned() bool {
	return b.owned
}

// Released reports whether Release dropped the block.
func (b *Buffer[T]) Released() bool {
	return b.released
}

// Data returns the block. It aliases the buffer.
func (b *Buffer[T]) Data() []T {
	return b.data
}
