package rule

import (
	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/pivot"
)

// ErrIterationLimit is returned by Run when maxIter pivots elapse without
// reaching Finished or Unbounded. This guards the largest-coefficient rule
// against non-termination on degenerate inputs.
var ErrIterationLimit = errors.New("rule: iteration limit reached")

// Result is the terminal outcome of a pivot loop.
type Result struct {
	Kind       Kind
	UnboundCol int // valid when Kind == Unbounded: the witnessing column
	Iterations int
}

// Hook observes each pivot Run performs, receiving the post-pivot
// dictionary and the labels that just traded basic/non-basic status. It
// exists for an external trace formatter that needs each pivot emitted in
// the order computation actually produces it.
type Hook func(d *dictionary.Dictionary, enteringLabel, leavingLabel int)

// Run repeatedly selects and performs pivots on d using r until the
// dictionary is optimal (Finished), an entering column has no leaving row
// (Unbounded), or maxIter pivots have elapsed (ErrIterationLimit). hook may
// be nil.
func Run(r Rule, d *dictionary.Dictionary, eps float64, maxIter int, hook Hook) (Result, error) {
	for iter := 0; iter < maxIter; iter++ {
		outcome := r.Select(d, eps)
		switch outcome.Kind {
		case Finished:
			return Result{Kind: Finished, Iterations: iter}, nil
		case Unbounded:
			return Result{Kind: Unbounded, UnboundCol: outcome.EnterCol, Iterations: iter}, nil
		case Continue:
			enteringLabel := d.LC[outcome.EnterCol]
			leavingLabel := d.LL[outcome.LeaveRow]
			if err := pivot.Pivot(d, outcome.EnterCol, outcome.LeaveRow); err != nil {
				return Result{}, errors.Wrapf(err, "rule: pivot failed at iteration %d", iter)
			}
			if hook != nil {
				hook(d, enteringLabel, leavingLabel)
			}
		}
	}
	return Result{}, ErrIterationLimit
}
