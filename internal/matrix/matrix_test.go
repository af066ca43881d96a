package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateZeroed(t *testing.T) {
	m := AllocateZeroed(2, 3)
	h, w := m.Dims()
	assert.Equal(t, 2, h)
	assert.Equal(t, 3, w)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			assert.Equal(t, 0.0, m.At(i, j))
		}
	}
}

func TestSetAndAt(t *testing.T) {
	m := AllocateZeroed(2, 2)
	m.Set(0, 1, 5.5)
	m.Set(1, 0, -2.0)
	assert.Equal(t, 5.5, m.At(0, 1))
	assert.Equal(t, -2.0, m.At(1, 0))
	assert.Equal(t, 0.0, m.At(0, 0))
}

func TestRowAndSetRow(t *testing.T) {
	m := AllocateZeroed(2, 3)
	m.SetRow(0, []float64{1, 2, 3})
	got := m.Row(nil, 0)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestBlit(t *testing.T) {
	src := AllocateZeroed(2, 2)
	src.SetRow(0, []float64{1, 2})
	src.SetRow(1, []float64{3, 4})

	dst := AllocateZeroed(3, 3)
	require.NoError(t, Blit(src, 0, 0, 2, 2, dst, 1, 1))

	assert.Equal(t, 1.0, dst.At(1, 1))
	assert.Equal(t, 2.0, dst.At(1, 2))
	assert.Equal(t, 3.0, dst.At(2, 1))
	assert.Equal(t, 4.0, dst.At(2, 2))
}

func TestBlitOutOfBounds(t *testing.T) {
	src := AllocateZeroed(2, 2)
	dst := AllocateZeroed(2, 2)
	err := Blit(src, 0, 0, 3, 2, dst, 0, 0)
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	m := AllocateZeroed(2, 2)
	m.Set(0, 0, 9)
	clone := m.Clone()
	clone.Set(0, 0, -1)
	assert.Equal(t, 9.0, m.At(0, 0))
	assert.Equal(t, -1.0, clone.At(0, 0))
}
