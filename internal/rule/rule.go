// Package rule implements entering and leaving variable selection under
// a chosen pivot heuristic.
package rule

import (
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/field"
)

// Kind classifies the result of a Select call.
type Kind int

const (
	// Continue means a pivot should be performed at (EnterCol, LeaveRow).
	Continue Kind = iota
	// Finished means the dictionary is optimal: no obj[j] > 0 remains.
	Finished
	// Unbounded means EnterCol was chosen but no row admits a leaving
	// variable, so the LP is unbounded along that column's variable.
	Unbounded
)

// Outcome is the result of one round of entering/leaving selection.
type Outcome struct {
	Kind     Kind
	EnterCol int // valid for Continue and Unbounded
	LeaveRow int // valid for Continue
}

// Rule selects the entering and leaving variable for one simplex iteration.
type Rule interface {
	Name() string
	Select(d *dictionary.Dictionary, eps float64) Outcome
}

// ratioTest runs the minimum-ratio leaving-row test for entering column je,
// breaking ties by smallest row label (Bland's tie-break, used by both
// rules).
func ratioTest(d *dictionary.Dictionary, je int, eps float64) (row int, found bool) {
	h, _ := d.Dims()
	row = -1
	var bestRatio float64
	for i := 0; i < h; i++ {
		aij := d.M.At(i, je)
		if !field.Negative(aij, eps) {
			continue // only rows with M[i,je] < 0 participate
		}
		ratio := -d.M.At(i, 0) / aij
		switch {
		case row == -1:
			row, bestRatio = i, ratio
		case ratio < bestRatio-eps:
			row, bestRatio = i, ratio
		case ratio <= bestRatio+eps && d.LL[i] < d.LL[row]:
			row, bestRatio = i, ratio
		}
	}
	return row, row != -1
}

func selectWithEnter(d *dictionary.Dictionary, je int, eps float64) Outcome {
	row, ok := ratioTest(d, je, eps)
	if !ok {
		return Outcome{Kind: Unbounded, EnterCol: je}
	}
	return Outcome{Kind: Continue, EnterCol: je, LeaveRow: row}
}

// Bland implements Bland's rule: smallest-index entering column, smallest-
// index leaving row on ties. Guarantees finite termination.
type Bland struct{}

func (Bland) Name() string { return "bland" }

func (Bland) Select(d *dictionary.Dictionary, eps float64) Outcome {
	_, w := d.Dims()
	for j := 1; j < w; j++ {
		if field.Positive(d.Obj[j], eps) {
			return selectWithEnter(d, j, eps)
		}
	}
	return Outcome{Kind: Finished}
}

// LargestCoefficient implements the largest-coefficient ("Dantzig") rule:
// the entering column maximizes obj[j] among positive reduced costs, ties
// broken by smallest index. This is the default rule; it is vulnerable to
// cycling on highly degenerate LPs.
type LargestCoefficient struct{}

func (LargestCoefficient) Name() string { return "largest-coefficient" }

func (LargestCoefficient) Select(d *dictionary.Dictionary, eps float64) Outcome {
	_, w := d.Dims()
	je := -1
	var best float64
	for j := 1; j < w; j++ {
		if field.Positive(d.Obj[j], eps) && (je == -1 || d.Obj[j] > best) {
			je, best = j, d.Obj[j]
		}
	}
	if je == -1 {
		return Outcome{Kind: Finished}
	}
	return selectWithEnter(d, je, eps)
}
