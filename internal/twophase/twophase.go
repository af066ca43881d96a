// Package twophase implements component E of the simplex engine: detecting
// infeasibility of the origin, building the Phase I auxiliary dictionary,
// running Phase I, and projecting the result back into the original
// variable set.
package twophase

import (
	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/dictionary"
)

// AuxLabel is the sentinel label reserved for the Phase I auxiliary
// variable, guaranteed disjoint from any label a normalized LP of
// practical size can generate.
const AuxLabel = 1 << 30

// BuildAuxiliary constructs the Phase I auxiliary dictionary D' from D
// width D.w+1, the auxiliary column set to +1 in
// every row, objective -x_AUX.
func BuildAuxiliary(d *dictionary.Dictionary) (*dictionary.Dictionary, error) {
	h, w := d.Dims()
	ll := append([]int(nil), d.LL...)
	lc := append(append([]int(nil), d.LC...), AuxLabel)
	obj := make([]float64, w+1)
	obj[w] = -1

	aux, err := dictionary.New(h, w+1, ll, lc, obj, d.VarName)
	if err != nil {
		return nil, errors.Wrap(err, "twophase: building auxiliary dictionary")
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			aux.M.Set(i, j, d.M.At(i, j))
		}
		aux.M.Set(i, w, 1)
	}
	return aux, nil
}

// AuxColumn returns the column index of the auxiliary variable in a freshly
// built auxiliary dictionary (always the last column).
func AuxColumn(aux *dictionary.Dictionary) int {
	_, w := aux.Dims()
	return w - 1
}

// errNoNegativeRow is returned by Seed when the auxiliary dictionary is
// already feasible, so there is no negative row to seed from.
var errNoNegativeRow = errors.New("twophase: dictionary already feasible, no row to seed from")

// Seed performs the single deterministic pivot that makes a freshly built
// auxiliary dictionary feasible: pivot the auxiliary
// column into the row with the most negative constant term. It returns the
// label displaced out of the basis by that pivot.
func Seed(aux *dictionary.Dictionary, pivot func(d *dictionary.Dictionary, je, il int) error) (leavingLabel int, err error) {
	if aux.IsFeasible(0) {
		return 0, errNoNegativeRow
	}
	il := aux.MostNegativeRow()
	je := AuxColumn(aux)
	leavingLabel = aux.LL[il]
	if err := pivot(aux, je, il); err != nil {
		return 0, err
	}
	return leavingLabel, nil
}

// locate finds AuxLabel in aux, returning either the column it occupies as
// a non-basic variable, or the row it occupies as a basic variable.
func locate(aux *dictionary.Dictionary) (col, row int) {
	col, row = -1, -1
	for j, label := range aux.LC {
		if label == AuxLabel {
			col = j
			break
		}
	}
	if col == -1 {
		for i, label := range aux.LL {
			if label == AuxLabel {
				row = i
				break
			}
		}
	}
	return col, row
}

// ProjectBack constructs a fresh dictionary for the original LP by removing
// the auxiliary column/row from aux and rewriting the objective into the
// new non-basic frame.
//
// orig is the pre-Phase-I dictionary, whose Obj vector holds the original
// LP's reduced costs; aux is the post-Phase-I auxiliary dictionary.
func ProjectBack(orig, aux *dictionary.Dictionary) (*dictionary.Dictionary, error) {
	col, row := locate(aux)
	if col == -1 && row == -1 {
		return nil, errors.New("twophase: auxiliary label not found in Phase I dictionary")
	}

	var newLL, newLC []int
	var newRows [][]float64
	h, w := aux.Dims()

	if col != -1 {
		// AUX is non-basic at column col: drop that column only.
		newLL = append([]int(nil), aux.LL...)
		newLC = make([]int, 0, w-1)
		for j, label := range aux.LC {
			if j == col {
				continue
			}
			newLC = append(newLC, label)
		}
		newRows = make([][]float64, h)
		for i := 0; i < h; i++ {
			r := make([]float64, 0, w-1)
			for j := 0; j < w; j++ {
				if j == col {
					continue
				}
				r = append(r, aux.M.At(i, j))
			}
			newRows[i] = r
		}
	} else {
		// AUX is basic (degenerate at zero) at row `row`: drop that row.
		newLC = append([]int(nil), aux.LC...)
		newLL = make([]int, 0, h-1)
		newRows = make([][]float64, 0, h-1)
		for i := 0; i < h; i++ {
			if i == row {
				continue
			}
			newLL = append(newLL, aux.LL[i])
			r := make([]float64, w)
			for j := 0; j < w; j++ {
				r[j] = aux.M.At(i, j)
			}
			newRows = append(newRows, r)
		}
	}

	newW := len(newLC)
	zeroObj := make([]float64, newW)
	projected, err := dictionary.New(len(newLL), newW, newLL, newLC, zeroObj, orig.VarName)
	if err != nil {
		return nil, errors.Wrap(err, "twophase: building projected dictionary")
	}
	for i, r := range newRows {
		for j, v := range r {
			projected.M.Set(i, j, v)
		}
	}

	rewriteObjective(orig, projected)
	return projected, nil
}

// rewriteObjective implements the Gaussian correction of design note 9:
// for each label x_j originally non-basic in orig with reduced cost c_j,
// if x_j is still non-basic in projected it keeps coefficient c_j at its
// new column; if x_j became basic, new_obj += c_j * row(x_j).
func rewriteObjective(orig, projected *dictionary.Dictionary) {
	colOf := make(map[int]int, len(projected.LC))
	for j, label := range projected.LC {
		colOf[label] = j
	}
	rowOf := make(map[int]int, len(projected.LL))
	for i, label := range projected.LL {
		rowOf[label] = i
	}

	_, w := projected.Dims()
	projected.Obj[0] += orig.Obj[0]

	_, ow := orig.Dims()
	for j := 1; j < ow; j++ {
		c := orig.Obj[j]
		if c == 0 {
			continue
		}
		label := orig.LC[j]
		if k, ok := colOf[label]; ok {
			projected.Obj[k] += c
			continue
		}
		i, ok := rowOf[label]
		if !ok {
			// Label vanished along with the auxiliary row/column: nothing
			// to fold in (can only happen for the auxiliary's own slot,
			// which orig never references).
			continue
		}
		for k := 0; k < w; k++ {
			projected.Obj[k] += c * projected.M.At(i, k)
		}
	}
}
