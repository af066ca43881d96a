// Package matrix implements a dense row-major table of field elements
// with at/set/blit operations, backed by gonum/mat.Dense.
package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an h×w dense table of float64, stored row-major via mat.Dense.
//
// Invariant: the backing *mat.Dense always has exactly h rows and w columns;
// Matrix never aliases a sub-view of a larger Dense so that Blit's bounds
// checks are meaningful.
type Matrix struct {
	m    *mat.Dense
	h, w int
}

// AllocateZeroed returns a new h×w matrix with every entry set to zero.
func AllocateZeroed(h, w int) *Matrix {
	if h <= 0 || w <= 0 {
		panic("matrix: non-positive dimension")
	}
	return &Matrix{m: mat.NewDense(h, w, nil), h: h, w: w}
}

// Dims returns the matrix's height and width.
func (mx *Matrix) Dims() (h, w int) { return mx.h, mx.w }

// At returns the element at (i, j). Bounds are checked logically; callers
// in hot pivot loops are expected to have already validated i, j against
// Dims.
func (mx *Matrix) At(i, j int) float64 {
	return mx.m.At(i, j)
}

// Set writes v to the element at (i, j).
func (mx *Matrix) Set(i, j int, v float64) {
	mx.m.Set(i, j, v)
}

// Row copies row i into dst, growing dst if necessary, and returns the
// (possibly reallocated) slice.
func (mx *Matrix) Row(dst []float64, i int) []float64 {
	if cap(dst) < mx.w {
		dst = make([]float64, mx.w)
	}
	dst = dst[:mx.w]
	mat.Row(dst, i, mx.m)
	return dst
}

// SetRow overwrites row i with src, which must have length w.
func (mx *Matrix) SetRow(i int, src []float64) {
	if len(src) != mx.w {
		panic("matrix: row length mismatch")
	}
	mx.m.SetRow(i, src)
}

// Blit copies the hh×ww rectangle of src starting at (srcI, srcJ) into dst
// starting at (dstI, dstJ), preserving row-major order. src and dst may be
// the same Matrix provided the two regions do not overlap.
func Blit(src *Matrix, srcI, srcJ, hh, ww int, dst *Matrix, dstI, dstJ int) error {
	if srcI < 0 || srcJ < 0 || srcI+hh > src.h || srcJ+ww > src.w {
		return errors.Errorf("matrix: blit source rect (%d,%d,%d,%d) out of bounds for %dx%d", srcI, srcJ, hh, ww, src.h, src.w)
	}
	if dstI < 0 || dstJ < 0 || dstI+hh > dst.h || dstJ+ww > dst.w {
		return errors.Errorf("matrix: blit dest rect (%d,%d,%d,%d) out of bounds for %dx%d", dstI, dstJ, hh, ww, dst.h, dst.w)
	}
	view := src.m.Slice(srcI, srcI+hh, srcJ, srcJ+ww)
	for i := 0; i < hh; i++ {
		for j := 0; j < ww; j++ {
			dst.m.Set(dstI+i, dstJ+j, view.At(i, j))
		}
	}
	return nil
}

// Clone returns a deep copy of mx.
func (mx *Matrix) Clone() *Matrix {
	out := AllocateZeroed(mx.h, mx.w)
	out.m.Copy(mx.m)
	return out
}
