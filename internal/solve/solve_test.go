package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/rule"
)

func opts() Options {
	return Options{Rule: rule.LargestCoefficient{}, Tolerance: 1e-9, MaxIter: 100}
}

// TestRunScenario1TinyBounded covers a single pivot reaching the optimum
// with no Phase I needed.
func TestRunScenario1TinyBounded(t *testing.T) {
	src := `MAXIMIZE 3 * x1 + 8 * x2
x1 + 2 * x2 <= 8
-3 * x1 - 4 * x2 <= 12
BOUNDS
VARIABLES
x1 x2
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The optimum is 32\nx2 = 4\n", report)
}

// TestRunScenario2Unbounded covers an unbounded direction found directly
// in Phase II.
func TestRunScenario2Unbounded(t *testing.T) {
	src := `MAXIMIZE x + y
x - y <= 1
BOUNDS
VARIABLES
x y
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The problem is unbounded (witnessing variable y)\n", report)
}

// TestRunScenario3InfeasibleOriginFeasibleLP covers the origin being
// infeasible while the LP itself is feasible, so Phase I runs and hands
// off to Phase II.
func TestRunScenario3InfeasibleOriginFeasibleLP(t *testing.T) {
	src := `MAXIMIZE x
x <= 2
x >= 1
BOUNDS
VARIABLES
x
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The optimum is 2\nx = 2\n", report)
}

// TestRunScenario4StrictlyInfeasible covers an LP whose feasible region
// is empty, detected by Phase I.
func TestRunScenario4StrictlyInfeasible(t *testing.T) {
	src := `MAXIMIZE x
x <= -1
BOUNDS
VARIABLES
x
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The problem is infeasible\n", report)
}

// TestRunScenario5BoundShift covers a nonzero lower bound on x being
// shifted out before the dictionary is built, and the reported value
// adding the shift back in.
func TestRunScenario5BoundShift(t *testing.T) {
	src := `MAXIMIZE x + y
x + y <= 10
BOUNDS
x >= 3
VARIABLES
x y
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The optimum is 10\nx = 10\n", report)
}

// TestRunScenario6MinimizeNegatesReportedObjective covers a Minimize goal
// being solved by maximizing internally and negating the reported
// objective value.
func TestRunScenario6MinimizeNegatesReportedObjective(t *testing.T) {
	src := `MINIMIZE -x
x <= 5
BOUNDS
VARIABLES
x
`
	report, err := Run(src, opts())
	require.NoError(t, err)
	assert.Equal(t, "The optimum is -5\nx = 5\n", report)
}

func TestRunHookIsInvokedForEveryPivot(t *testing.T) {
	src := `MAXIMIZE 3 * x1 + 8 * x2
x1 + 2 * x2 <= 8
-3 * x1 - 4 * x2 <= 12
BOUNDS
VARIABLES
x1 x2
`
	var pivots int
	o := opts()
	o.Hook = func(d *dictionary.Dictionary, entering, leaving int) {
		pivots++
	}
	report, err := Run(src, o)
	require.NoError(t, err)
	assert.Equal(t, "The optimum is 32\nx2 = 4\n", report)
	assert.Equal(t, 1, pivots)
}

func TestRunRejectsMalformedInput(t *testing.T) {
	_, err := Run("not an lp file", opts())
	assert.Error(t, err)
}
