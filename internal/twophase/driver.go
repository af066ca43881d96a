package twophase

import (
	"github.com/pkg/errors"
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/pivot"
	"github.com/nsidwell/simplex/internal/rule"
)

// Status is the terminal classification of a two-phase solve.
type Status int

const (
	Optimal Status = iota
	Unbounded
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Result is the outcome of driving a dictionary to termination, across
// both phases.
type Result struct {
	Status       Status
	Objective    float64
	Assignment   map[int]float64 // label -> value, for basic variables only
	UnboundLabel int             // valid when Status == Unbounded
	Iterations   int             // total pivots across both phases
}

// Solve runs the full two-phase procedure on d using rule r and tolerance
// eps, up to maxIter pivots per phase. hook, if non-nil, is
// invoked after every pivot in either phase for external tracing.
func Solve(d *dictionary.Dictionary, r rule.Rule, eps float64, maxIter int, hook rule.Hook) (Result, error) {
	working := d
	iterations := 0

	if !d.IsFeasible(eps) {
		aux, err := BuildAuxiliary(d)
		if err != nil {
			return Result{}, err
		}
		seedLeaving, err := Seed(aux, pivot.Pivot)
		if err != nil {
			return Result{}, errors.Wrap(err, "twophase: seeding phase I")
		}
		iterations++
		if hook != nil {
			hook(aux, AuxLabel, seedLeaving)
		}

		phase1, err := rule.Run(r, aux, eps, maxIter, hook)
		if err != nil {
			return Result{}, errors.Wrap(err, "twophase: phase I")
		}
		iterations += phase1.Iterations
		if phase1.Kind == rule.Unbounded {
			// The Phase I auxiliary objective -x_AUX is bounded above by
			// zero; reaching Unbounded indicates a prior invariant
			// violation rather than a legitimate LP outcome.
			return Result{}, errors.New("twophase: phase I reported unbounded, which should be unreachable")
		}

		if aux.Objective() < -eps {
			return Result{Status: Infeasible, Iterations: iterations}, nil
		}

		projected, err := ProjectBack(d, aux)
		if err != nil {
			return Result{}, errors.Wrap(err, "twophase: projecting phase I result")
		}
		working = projected
	}

	phase2, err := rule.Run(r, working, eps, maxIter, hook)
	if err != nil {
		return Result{}, errors.Wrap(err, "twophase: phase II")
	}
	iterations += phase2.Iterations

	switch phase2.Kind {
	case rule.Unbounded:
		return Result{
			Status:       Unbounded,
			UnboundLabel: working.LC[phase2.UnboundCol],
			Iterations:   iterations,
		}, nil
	default:
		return Result{
			Status:     Optimal,
			Objective:  working.Objective(),
			Assignment: working.Assignment(),
			Iterations: iterations,
		}, nil
	}
}
