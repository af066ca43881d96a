// Package dictionary implements the labeled tableau pairing a basic
// solution with an expression of basic variables in terms of non-basic
// variables.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/field"
	"github.com/nsidwell/simplex/internal/matrix"
)

// Dictionary is a labeled tableau. Row i encodes
//
//	x_{LL[i]} = M[i,0] + Σ_{j>=1} M[i,j] · x_{LC[j]}
//
// and the objective row encodes
//
//	z = Obj[0] + Σ_{j>=1} Obj[j] · x_{LC[j]}
type Dictionary struct {
	M   *matrix.Matrix
	LL  []int     // LL[i]: label of the basic variable of row i
	LC  []int     // LC[0] == 0 (constant column); LC[j]: label of the non-basic column variable
	Obj []float64 // length w, column-aligned with LC
	weq []float64 // pivot scratch, length w, reset to zero at the start of every pivot

	VarName string // display prefix, e.g. "x"
}

// New allocates a dictionary of shape h×w with the given row/column labels
// and objective row, validating that the labels are well-formed.
func New(h, w int, ll, lc []int, obj []float64, varName string) (*Dictionary, error) {
	if len(ll) != h {
		return nil, errors.Errorf("dictionary: |ll|=%d != h=%d", len(ll), h)
	}
	if len(lc) != w {
		return nil, errors.Errorf("dictionary: |lc|=%d != w=%d", len(lc), w)
	}
	if len(obj) != w {
		return nil, errors.Errorf("dictionary: |obj|=%d != w=%d", len(obj), w)
	}
	if lc[0] != 0 {
		return nil, errors.New("dictionary: lc[0] must be the reserved constant label 0")
	}
	if err := checkDistinctLabels(ll, lc); err != nil {
		return nil, err
	}

	d := &Dictionary{
		M:       matrix.AllocateZeroed(h, w),
		LL:      append([]int(nil), ll...),
		LC:      append([]int(nil), lc...),
		Obj:     append([]float64(nil), obj...),
		weq:     make([]float64, w),
		VarName: varName,
	}
	return d, nil
}

func checkDistinctLabels(ll, lc []int) error {
	seen := make(map[int]struct{}, len(ll)+len(lc))
	for _, v := range ll {
		if _, ok := seen[v]; ok {
			return errors.Errorf("dictionary: duplicate label %d across ll/lc", v)
		}
		seen[v] = struct{}{}
	}
	for j, v := range lc {
		if j == 0 {
			continue // label 0 is the reserved constant column, not a variable
		}
		if _, ok := seen[v]; ok {
			return errors.Errorf("dictionary: duplicate label %d across ll/lc", v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Dims returns the dictionary's row/column counts.
func (d *Dictionary) Dims() (h, w int) { return d.M.Dims() }

// Weq exposes the pivot scratch buffer so the pivot engine can write into it
// without per-pivot allocation. Callers outside internal/pivot should not
// use this.
func (d *Dictionary) Weq() []float64 { return d.weq }

// ResetWeq zeroes the scratch buffer; the pivot engine calls this at the
// start of every pivot.
func (d *Dictionary) ResetWeq() {
	for i := range d.weq {
		d.weq[i] = 0
	}
}

// IsFeasible reports whether every row's constant term is non-negative
// within tolerance eps.
func (d *Dictionary) IsFeasible(eps float64) bool {
	h, _ := d.Dims()
	for i := 0; i < h; i++ {
		if !field.NonNegative(d.M.At(i, 0), eps) {
			return false
		}
	}
	return true
}

// MostNegativeRow returns the row index with the smallest (most negative)
// constant term, used to seed the Phase I auxiliary pivot. Ties broken by
// smallest row index.
func (d *Dictionary) MostNegativeRow() int {
	h, _ := d.Dims()
	best := 0
	bestVal := d.M.At(0, 0)
	for i := 1; i < h; i++ {
		if v := d.M.At(i, 0); v < bestVal {
			best = i
			bestVal = v
		}
	}
	return best
}

// Assignment returns the current basic solution: label -> value, for every
// basic (row) variable. Non-basic variables are implicitly zero and are not
// included.
func (d *Dictionary) Assignment() map[int]float64 {
	h, _ := d.Dims()
	out := make(map[int]float64, h)
	for i := 0; i < h; i++ {
		out[d.LL[i]] = d.M.At(i, 0)
	}
	return out
}

// Objective returns the current objective constant, obj[0].
func (d *Dictionary) Objective() float64 { return d.Obj[0] }

// Clone returns a deep copy of the dictionary.
func (d *Dictionary) Clone() *Dictionary {
	return &Dictionary{
		M:       d.M.Clone(),
		LL:      append([]int(nil), d.LL...),
		LC:      append([]int(nil), d.LC...),
		Obj:     append([]float64(nil), d.Obj...),
		weq:     make([]float64, len(d.weq)),
		VarName: d.VarName,
	}
}

// Snapshot is the read-only view of a Dictionary's labels and cells that an
// external trace formatter needs. The engine exposes the tableau; it has
// no opinion on how that tableau is rendered.
type Snapshot struct {
	VarName string
	RowVar  []string   // name of the basic variable for each row
	ColVar  []string   // name of the non-basic variable for each column >= 1
	Rows    [][]float64
	Obj     []float64
}

// Snapshot captures the current tableau for formatting.
func (d *Dictionary) Snapshot() Snapshot {
	h, w := d.Dims()
	s := Snapshot{
		VarName: d.VarName,
		RowVar:  make([]string, h),
		ColVar:  make([]string, w-1),
		Rows:    make([][]float64, h),
		Obj:     append([]float64(nil), d.Obj...),
	}
	for i := 0; i < h; i++ {
		s.RowVar[i] = name(d.VarName, d.LL[i])
		row := make([]float64, w)
		for j := 0; j < w; j++ {
			row[j] = d.M.At(i, j)
		}
		s.Rows[i] = row
	}
	for j := 1; j < w; j++ {
		s.ColVar[j-1] = name(d.VarName, d.LC[j])
	}
	return s
}

func name(prefix string, label int) string {
	return fmt.Sprintf("%s_%d", prefix, label)
}

// String renders one line per row, `name_ll[i] = Σ M[i,j] * name_lc[j]`,
// then a final z= line.
func (d *Dictionary) String() string {
	var b strings.Builder
	s := d.Snapshot()
	h := len(s.Rows)
	for i := 0; i < h; i++ {
		fmt.Fprintf(&b, "%s = %s\n", s.RowVar[i], formatLine(s.Rows[i], s.ColVar))
	}
	fmt.Fprintf(&b, "z = %s\n", formatLine(s.Obj, s.ColVar))
	return b.String()
}

func formatLine(row []float64, colVar []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g", row[0])
	for j, name := range colVar {
		coef := row[j+1]
		if coef == 0 {
			continue
		}
		fmt.Fprintf(&b, " + %g*%s", coef, name)
	}
	return b.String()
}
