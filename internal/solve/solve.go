// Package solve ties the parser, normalizer, and two-phase driver into the
// single entry point the CLI calls, and renders the textual report.
package solve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nsidwell/simplex/internal/lpmodel"
	"github.com/nsidwell/simplex/internal/lpparse"
	"github.com/nsidwell/simplex/internal/normalize"
	"github.com/nsidwell/simplex/internal/rule"
	"github.com/nsidwell/simplex/internal/twophase"
)

// Options configures one solve.Run call.
type Options struct {
	Rule      rule.Rule
	Tolerance float64
	MaxIter   int
	Hook      rule.Hook // optional: receives every pivot for the external trace formatter
	Logger    *zap.Logger
}

// Run parses src as an LP-format document, normalizes it, drives the
// two-phase procedure, and returns the rendered report text.
func Run(src string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lp, err := lpparse.Parse(src)
	if err != nil {
		return "", errors.Wrap(err, "solve: parsing LP")
	}
	logger.Debug("parsed LP", zap.Int("variables", len(lp.Variables)), zap.Int("inequalities", len(lp.Inequalities)))

	norm, err := normalize.Normalize(lp)
	if err != nil {
		return "", errors.Wrap(err, "solve: normalizing LP")
	}
	logger.Debug("normalized LP", zap.String("rule", opts.Rule.Name()))

	result, err := twophase.Solve(norm.Dictionary, opts.Rule, opts.Tolerance, opts.MaxIter, opts.Hook)
	if err != nil {
		return "", errors.Wrap(err, "solve: running two-phase simplex")
	}
	logger.Debug("solve finished", zap.Stringer("status", result.Status), zap.Int("iterations", result.Iterations))

	return report(lp, norm, result), nil
}

// report renders the three possible solve outcomes: unbounded, infeasible,
// or optimal with the variable assignment.
func report(lp *lpmodel.LP, norm *normalize.Result, result twophase.Result) string {
	switch result.Status {
	case twophase.Unbounded:
		return fmt.Sprintf("The problem is unbounded (witnessing variable %s)\n", labelName(norm, result.UnboundLabel))
	case twophase.Infeasible:
		return "The problem is infeasible\n"
	default:
		var b strings.Builder
		objective := result.Objective
		if norm.Minimize {
			objective = -objective
		}
		fmt.Fprintf(&b, "The optimum is %g\n", objective)

		names := make([]string, 0, len(lp.Variables))
		names = append(names, lp.Variables...)
		sort.Strings(names)
		for _, name := range names {
			label := norm.ReportedLabel[name]
			v := result.Assignment[label] + norm.ReportedShift[name]
			if v == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s = %g\n", name, v)
		}
		return b.String()
	}
}

func labelName(norm *normalize.Result, label int) string {
	if label == twophase.AuxLabel {
		return "aux"
	}
	if name, ok := norm.LabelName[label]; ok {
		return name
	}
	return fmt.Sprintf("x_%d", label)
}
