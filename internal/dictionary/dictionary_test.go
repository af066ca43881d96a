package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSample(t *testing.T) *Dictionary {
	t.Helper()
	// x1 + 2x2 <= 8, -3x1 - 4x2 <= 12; maximize 3x1 + 8x2.
	d, err := New(2, 3, []int{3, 4}, []int{0, 1, 2}, []float64{0, 3, 8}, "x")
	require.NoError(t, err)
	d.M.Set(0, 0, 8)
	d.M.Set(0, 1, -1)
	d.M.Set(0, 2, -2)
	d.M.Set(1, 0, 12)
	d.M.Set(1, 1, 3)
	d.M.Set(1, 2, 4)
	return d
}

func TestNewValidatesDims(t *testing.T) {
	_, err := New(1, 2, []int{1, 2}, []int{0, 1}, []float64{0, 1}, "x")
	assert.Error(t, err)
}

func TestNewRejectsDuplicateLabels(t *testing.T) {
	_, err := New(1, 2, []int{1}, []int{0, 1}, []float64{0, 1}, "x")
	assert.Error(t, err)
}

func TestNewRejectsNonZeroConstantLabel(t *testing.T) {
	_, err := New(1, 2, []int{1}, []int{5, 2}, []float64{0, 1}, "x")
	assert.Error(t, err)
}

func TestIsFeasible(t *testing.T) {
	d := newSample(t)
	assert.True(t, d.IsFeasible(0))

	d.M.Set(0, 0, -1)
	assert.False(t, d.IsFeasible(0))
	assert.True(t, d.IsFeasible(1.5))
}

func TestMostNegativeRow(t *testing.T) {
	d := newSample(t)
	d.M.Set(0, 0, -5)
	d.M.Set(1, 0, -9)
	assert.Equal(t, 1, d.MostNegativeRow())
}

func TestAssignmentAndObjective(t *testing.T) {
	d := newSample(t)
	assignment := d.Assignment()
	assert.Equal(t, 8.0, assignment[3])
	assert.Equal(t, 12.0, assignment[4])
	assert.Equal(t, 0.0, d.Objective())
}

func TestClone(t *testing.T) {
	d := newSample(t)
	clone := d.Clone()
	clone.M.Set(0, 0, 100)
	assert.Equal(t, 8.0, d.M.At(0, 0))
	assert.Equal(t, 100.0, clone.M.At(0, 0))
}

func TestSnapshotAndString(t *testing.T) {
	d := newSample(t)
	snap := d.Snapshot()
	assert.Equal(t, []string{"x_3", "x_4"}, snap.RowVar)
	assert.Equal(t, []string{"x_1", "x_2"}, snap.ColVar)

	s := d.String()
	assert.Contains(t, s, "x_3 = 8")
	assert.Contains(t, s, "z = 0")
}
