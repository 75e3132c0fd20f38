package lineal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/go-lineal/lineal/hwy"
)

func TestAllocateFill(t *testing.T) {
	ones, err := Allocate[float32](7, FillOnes)
	require.NoError(t, err)
	require.True(t, ones.Owned())
	require.Equal(t, []float32{1, 1, 1, 1, 1, 1, 1}, ones.Data())

	zeros, err := Allocate[int16](4, FillZeros)
	require.NoError(t, err)
	require.Equal(t, []int16{0, 0, 0, 0}, zeros.Data())

	none, err := Allocate[uint8](3, FillNone)
	require.NoError(t, err)
	require.Equal(t, 3, none.Len())

	empty, err := Allocate[float64](0, FillOnes)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

func TestAllocateAlignment(t *testing.T) {
	small, err := Allocate[float64](3, FillNone)
	require.NoError(t, err)
	require.True(t, hwy.IsAlignedTo(small.Data(), 16))

	large, err := Allocate[float64](256, FillNone)
	require.NoError(t, err)
	require.True(t, hwy.IsAlignedTo(large.Data(), 64))
}

func TestAllocateError(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"negative", -1},
		{"overflow", math.MaxInt/2 + 1},
		{"refused", math.MaxInt / 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Allocate[float32](tt.count, FillZeros)
			require.Nil(t, buf)
			var allocErr *AllocationError
			require.True(t, errors.As(err, &allocErr), "got %v", err)
			require.Equal(t, tt.count, allocErr.Count)
			require.Equal(t, 4, allocErr.ElemSize)
			require.Error(t, allocErr.Cause)
		})
	}
}

func TestBufferMoveAndRelease(t *testing.T) {
	src, err := Allocate[float64](4, FillOnes)
	require.NoError(t, err)

	dst := src.Move()
	require.True(t, dst.Owned())
	require.False(t, src.Owned())

	// The moved-from buffer stays readable and cannot release the block.
	src.Release()
	require.False(t, src.Released())
	require.Equal(t, 1.0, src.At(3))
	require.Equal(t, 4, dst.Len())

	dst.Release()
	require.True(t, dst.Released())
	require.Equal(t, 0, dst.Len())
	require.False(t, dst.Owned())

	// Releasing twice is a no-op.
	dst.Release()
	require.True(t, dst.Released())
	require.Equal(t, 1.0, src.At(0))
}

func TestWrapIsBorrowed(t *testing.T) {
	data := []int32{1, 2, 3}
	buf := Wrap(data)
	require.False(t, buf.Owned())

	buf.Set(1, 20)
	require.Equal(t, int32(20), data[1])

	buf.Release()
	require.False(t, buf.Released())
	require.Equal(t, 3, buf.Len())
}

func TestFillPolicyString(t *testing.T) {
	require.Equal(t, "none", FillNone.String())
	require.Equal(t, "zeros", FillZeros.String())
	require.Equal(t, "ones", FillOnes.String())
	require.Equal(t, "unknown", FillPolicy(7).String())
}
