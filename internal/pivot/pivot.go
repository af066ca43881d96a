// Package pivot implements the in-place pivot transformation on a
// dictionary.
package pivot

import (
	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/field"
)

// ErrDegeneratePivot is returned when the chosen pivot element is zero. The
// selection rules in internal/rule never choose such a pivot; seeing this
// error indicates a prior invariant violation.
var ErrDegeneratePivot = errors.New("pivot: pivot element is zero")

// Pivot performs the pivot transformation exchanging the entering column je
// (>= 1) with the leaving row il:
//
//  1. k = -1/p where p = M[il,je].
//  2. weq[j] = k*M[il,j] for j != je; weq[je] = 1/p.
//  3. every row i != il, and the objective row, is updated by
//     M[i,j] += a*weq[j] (j != je), M[i,je] = a*weq[je], where a = M[i,je].
//  4. weq is written back into row il.
//  5. LL[il] and LC[je] are swapped.
func Pivot(d *dictionary.Dictionary, je, il int) error {
	h, w := d.Dims()
	if je < 1 || je >= w {
		return errors.Errorf("pivot: entering column %d out of range [1,%d)", je, w)
	}
	if il < 0 || il >= h {
		return errors.Errorf("pivot: leaving row %d out of range [0,%d)", il, h)
	}

	p := d.M.At(il, je)
	if p == field.Zero[float64]() {
		return ErrDegeneratePivot
	}
	k := -1 / p

	d.ResetWeq()
	weq := d.Weq()
	for j := 0; j < w; j++ {
		if j == je {
			continue
		}
		weq[j] = k * d.M.At(il, j)
	}
	weq[je] = -k // == 1/p

	updateRow := func(get func(j int) float64, set func(j int, v float64)) {
		a := get(je)
		if a == 0 {
			return
		}
		for j := 0; j < w; j++ {
			if j == je {
				continue
			}
			set(j, get(j)+a*weq[j])
		}
		set(je, a*weq[je])
	}

	for i := 0; i < h; i++ {
		if i == il {
			continue
		}
		row := i
		updateRow(
			func(j int) float64 { return d.M.At(row, j) },
			func(j int, v float64) { d.M.Set(row, j, v) },
		)
	}
	updateRow(
		func(j int) float64 { return d.Obj[j] },
		func(j int, v float64) { d.Obj[j] = v },
	)

	for j := 0; j < w; j++ {
		d.M.Set(il, j, weq[j])
	}

	d.LL[il], d.LC[je] = d.LC[je], d.LL[il]
	return nil
}
