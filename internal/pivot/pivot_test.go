package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsidwell/simplex/internal/dictionary"
)

// sample builds a tiny bounded dictionary: maximize 3x1 + 8x2 subject to
// x1 + 2x2 <= 8, -3x1 - 4x2 <= 12.
func sample(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New(2, 3, []int{3, 4}, []int{0, 1, 2}, []float64{0, 3, 8}, "x")
	require.NoError(t, err)
	d.M.Set(0, 0, 8)
	d.M.Set(0, 1, -1)
	d.M.Set(0, 2, -2)
	d.M.Set(1, 0, 12)
	d.M.Set(1, 1, 3)
	d.M.Set(1, 2, 4)
	return d
}

func TestPivotSingleStepReachesKnownOptimum(t *testing.T) {
	d := sample(t)
	require.NoError(t, Pivot(d, 2, 0))

	assert.Equal(t, []int{2, 4}, d.LL)
	assert.Equal(t, []int{0, 1, 3}, d.LC)

	assert.InDelta(t, 4.0, d.M.At(0, 0), 1e-9)
	assert.InDelta(t, -0.5, d.M.At(0, 1), 1e-9)
	assert.InDelta(t, -0.5, d.M.At(0, 2), 1e-9)

	assert.InDelta(t, 28.0, d.M.At(1, 0), 1e-9)
	assert.InDelta(t, 1.0, d.M.At(1, 1), 1e-9)
	assert.InDelta(t, -2.0, d.M.At(1, 2), 1e-9)

	assert.InDelta(t, 32.0, d.Obj[0], 1e-9)
	assert.InDelta(t, -1.0, d.Obj[1], 1e-9)
	assert.InDelta(t, -4.0, d.Obj[2], 1e-9)

	assert.True(t, d.IsFeasible(1e-9))
}

// TestPivotInvolution checks the involution property: pivoting back in
// (je_new=il, il_new=je) restores the original tableau.
func TestPivotInvolution(t *testing.T) {
	d := sample(t)
	before := d.Clone()

	require.NoError(t, Pivot(d, 2, 0))
	// The column that just became non-basic is column 2 (now label 3);
	// pivoting it back into row 0 (now label 2) should restore the start.
	require.NoError(t, Pivot(d, 2, 0))

	h, w := d.Dims()
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			assert.InDelta(t, before.M.At(i, j), d.M.At(i, j), 1e-9)
		}
	}
	assert.Equal(t, before.LL, d.LL)
	assert.Equal(t, before.LC, d.LC)
}

func TestPivotRejectsDegenerateElement(t *testing.T) {
	d := sample(t)
	d.M.Set(0, 2, 0)
	err := Pivot(d, 2, 0)
	assert.ErrorIs(t, err, ErrDegeneratePivot)
}

func TestPivotRejectsOutOfRangeColumn(t *testing.T) {
	d := sample(t)
	assert.Error(t, Pivot(d, 0, 0))
	assert.Error(t, Pivot(d, 5, 0))
}

func TestPivotRejectsOutOfRangeRow(t *testing.T) {
	d := sample(t)
	assert.Error(t, Pivot(d, 1, -1))
	assert.Error(t, Pivot(d, 1, 5))
}
