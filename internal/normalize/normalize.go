// Package normalize converts a parsed LP (objective, inequalities, bounds)
// into the initial dictionary the two-phase driver consumes.
package normalize

import (
	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/lpmodel"
)

// ErrUnsupportedConstruct is returned when the input LP still contains an
// equality constraint; callers must split `a = b` into `a <= b` and
// `a >= b` before normalization.
var ErrUnsupportedConstruct = errors.New("normalize: equality constraints must be split before normalization")

// Result is the outcome of normalizing a parsed LP: the initial dictionary
// plus the bookkeeping needed to translate dictionary labels back into the
// user's original variable names and bound-shifted values when reporting.
type Result struct {
	Dictionary *dictionary.Dictionary

	// LabelName maps every label appearing in the dictionary (row or
	// column) to a display name.
	LabelName map[int]string

	// ReportedLabel maps an original user variable name to its dictionary
	// label (stable across normalization: bound-shifting moves a variable
	// in place rather than renaming it).
	// ReportedShift is the constant offset to add back when reporting that
	// variable's value: if x was shifted to x' = x - lower, reporting x
	// needs lower + x'.
	ReportedLabel map[string]int
	ReportedShift map[string]float64

	// Minimize is true if the original goal was Minimize, in which case
	// the caller must negate the reported objective value.
	Minimize bool
}

// Normalize converts a parsed LP into an initial dictionary, performing
// bound-shift substitution and inequality sign normalization.
func Normalize(lp *lpmodel.LP) (*Result, error) {
	for _, ineq := range lp.Inequalities {
		if ineq.Rel == lpmodel.EQ {
			return nil, ErrUnsupportedConstruct
		}
	}

	work := cloneLP(lp)
	reportedLabel := make(map[string]int, len(lp.Variables))
	reportedShift := make(map[string]float64, len(lp.Variables))
	for _, name := range lp.Variables {
		reportedLabel[name] = work.VarIndex[name]
		reportedShift[name] = 0
	}

	if err := shiftBounds(work, reportedLabel, reportedShift); err != nil {
		return nil, err
	}

	n := len(work.Variables)
	m := len(work.Inequalities)
	if m == 0 {
		return nil, errors.New("normalize: LP has no constraints")
	}
	w := n + 1

	ll := make([]int, m)
	for i := range ll {
		ll[i] = n + i + 1
	}
	lc := make([]int, w)
	for j := 1; j < w; j++ {
		lc[j] = j
	}

	d, err := dictionary.New(m, w, ll, lc, make([]float64, w), "x")
	if err != nil {
		return nil, errors.Wrap(err, "normalize: allocating dictionary")
	}

	for i, ineq := range work.Inequalities {
		mult := 1.0
		if ineq.Rel == lpmodel.GE {
			mult = -1.0
		}
		d.M.Set(i, 0, mult*ineq.Const)
		for _, t := range ineq.Terms {
			idx := work.VarIndex[t.Var]
			d.M.Set(i, idx, d.M.At(i, idx)-mult*t.Coeff)
		}
	}

	objMult := 1.0
	if work.Goal == lpmodel.Minimize {
		objMult = -1.0
	}
	d.Obj[0] = objMult * work.ObjConst
	for _, t := range work.Objective {
		idx := work.VarIndex[t.Var]
		d.Obj[idx] += objMult * t.Coeff
	}

	labelName := make(map[int]string, m+n)
	for _, name := range work.Variables {
		labelName[work.VarIndex[name]] = name
	}
	for i := 0; i < m; i++ {
		labelName[ll[i]] = "s"
	}

	return &Result{
		Dictionary:    d,
		LabelName:     labelName,
		ReportedLabel: reportedLabel,
		ReportedShift: reportedShift,
		Minimize:      work.Goal == lpmodel.Minimize,
	}, nil
}

// shiftBounds performs bound normalization: an explicit upper bound
// becomes an inequality row; a nonzero lower bound shifts the
// variable in place so its new lower bound is zero, substituting
// x = x' + lower throughout every inequality and the objective. The
// variable keeps its original label; only the reported display value
// changes (reportedShift records the offset to add back when printing).
func shiftBounds(lp *lpmodel.LP, reportedLabel map[string]int, reportedShift map[string]float64) error {
	for _, b := range lp.Bounds {
		if b.HasUpper {
			lp.Inequalities = append(lp.Inequalities, lpmodel.Inequality{
				Terms: []lpmodel.Term{{Coeff: 1, Var: b.Var}},
				Rel:   lpmodel.LE,
				Const: b.Upper,
			})
		}
		if b.HasLower && b.Lower != 0 {
			if b.HasUpper && b.Upper < b.Lower {
				return errors.Errorf("normalize: bound for %s parsed in reversed order (lower %g > upper %g)", b.Var, b.Lower, b.Upper)
			}
			substitute(lp, b.Var, b.Lower)
			reportedShift[b.Var] += b.Lower
		}
	}
	return nil
}

// substitute shifts every occurrence of var (coefficient c, x = x' + lower)
// in place: each inequality's constant loses c*lower, since that term moves
// from the left-hand side to the right-hand side, and the objective
// constant gains c*lower.
func substitute(lp *lpmodel.LP, name string, lower float64) {
	for i := range lp.Inequalities {
		ineq := &lp.Inequalities[i]
		for _, t := range ineq.Terms {
			if t.Var == name {
				ineq.Const -= t.Coeff * lower
			}
		}
	}
	for _, t := range lp.Objective {
		if t.Var == name {
			lp.ObjConst += t.Coeff * lower
		}
	}
}

func cloneLP(lp *lpmodel.LP) *lpmodel.LP {
	out := lpmodel.NewLP(lp.Goal)
	out.ObjConst = lp.ObjConst
	out.Objective = append([]lpmodel.Term(nil), lp.Objective...)
	out.Inequalities = make([]lpmodel.Inequality, len(lp.Inequalities))
	for i, ineq := range lp.Inequalities {
		out.Inequalities[i] = lpmodel.Inequality{
			Terms: append([]lpmodel.Term(nil), ineq.Terms...),
			Rel:   ineq.Rel,
			Const: ineq.Const,
		}
	}
	out.Bounds = append([]lpmodel.Bound(nil), lp.Bounds...)
	for _, name := range lp.Variables {
		out.Intern(name)
	}
	return out
}
