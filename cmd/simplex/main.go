// Command simplex is the production entry point of the engine: it reads
// an LP-format file, runs the two-phase simplex method, and prints the
// optimum, an unboundedness message, or an infeasibility message.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsidwell/simplex/internal/config"
	"github.com/nsidwell/simplex/internal/dictionary"
	"github.com/nsidwell/simplex/internal/logging"
	"github.com/nsidwell/simplex/internal/rule"
	"github.com/nsidwell/simplex/internal/solve"
	"github.com/nsidwell/simplex/internal/trace"
)

var (
	useBland bool
	useLatex bool
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "simplex [-b] [-l] <file.lp>",
	Short: "Solve a linear program with the two-phase dictionary simplex method",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.Flags().BoolVarP(&useBland, "bland", "b", false, "select Bland's rule (default: largest-coefficient)")
	rootCmd.Flags().BoolVarP(&useLatex, "latex", "l", false, "emit the pivot trace formatted for LaTeX")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress debug logging")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger, err := logging.New(quiet)
	if err != nil {
		return fmt.Errorf("simplex: building logger: %w", err)
	}
	defer logger.Sync()

	path := args[0]
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("simplex: reading %s: %w", path, err)
	}

	format := trace.Plain
	if useLatex {
		format = trace.LaTeX
	}
	tracer := trace.New(cmd.OutOrStdout(), format)

	r := pickRule(cfg, useBland)

	report, err := solve.Run(string(contents), solve.Options{
		Rule:      r,
		Tolerance: cfg.Tolerance,
		MaxIter:   cfg.MaxIterations,
		Hook: func(d *dictionary.Dictionary, enteringLabel, leavingLabel int) {
			tracer.Pivot(enteringLabel, leavingLabel)
			tracer.Step("pivot", d)
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report)
	return nil
}

func pickRule(cfg *config.Config, blandFlag bool) rule.Rule {
	if blandFlag || cfg.Bland {
		return rule.Bland{}
	}
	return rule.LargestCoefficient{}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
