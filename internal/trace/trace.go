// Package trace implements the step-by-step dictionary formatter: plain
// text by default, LaTeX when the caller selects it with `-l`/`--latex`.
// It is a pure presentation layer over dictionary.Snapshot and never
// mutates solver state — the engine exposes enough of the tableau for an
// external formatter; it has no opinion on LaTeX itself.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/nsidwell/simplex/internal/dictionary"
)

// Format selects the rendering of a dictionary step.
type Format int

const (
	Plain Format = iota
	LaTeX
)

// Writer renders successive dictionary snapshots to w in the selected
// format, labeling each with the phase and step index it belongs to.
type Writer struct {
	w      io.Writer
	format Format
	step   int
}

// New creates a Writer. Pass LaTeX to get the `-l`/`--latex` rendering;
// otherwise steps are rendered as plain text.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Step renders one dictionary's current state, tagged with a phase label
// ("phase I" / "phase II") for readability across a two-phase run.
func (t *Writer) Step(phase string, d *dictionary.Dictionary) {
	t.step++
	snap := d.Snapshot()
	switch t.format {
	case LaTeX:
		t.writeLaTeX(phase, snap)
	default:
		t.writePlain(phase, snap)
	}
}

// Pivot records the entering/leaving labels of a pivot just performed.
func (t *Writer) Pivot(enterLabel, leaveLabel int) {
	if t.format == LaTeX {
		fmt.Fprintf(t.w, "%% pivot: entering x_%d, leaving x_%d\n", enterLabel, leaveLabel)
		return
	}
	fmt.Fprintf(t.w, "pivot: entering x_%d, leaving x_%d\n", enterLabel, leaveLabel)
}

func (t *Writer) writePlain(phase string, snap dictionary.Snapshot) {
	fmt.Fprintf(t.w, "--- %s, step %d ---\n", phase, t.step)
	for i, row := range snap.Rows {
		fmt.Fprintf(t.w, "%s = %s\n", snap.RowVar[i], formatLine(row, snap.ColVar))
	}
	fmt.Fprintf(t.w, "z = %s\n", formatLine(snap.Obj, snap.ColVar))
}

func (t *Writer) writeLaTeX(phase string, snap dictionary.Snapshot) {
	fmt.Fprintf(t.w, "\\begin{align*}\n%% %s, step %d\n", phase, t.step)
	for i, row := range snap.Rows {
		fmt.Fprintf(t.w, "%s &= %s \\\\\n", texVar(snap.RowVar[i]), formatLineLaTeX(row, snap.ColVar))
	}
	fmt.Fprintf(t.w, "z &= %s\n\\end{align*}\n", formatLineLaTeX(snap.Obj, snap.ColVar))
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

func formatLineLaTeX(row []float64, colVar []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g", row[0])
	for j, name := range colVar {
		coef := row[j+1]
		if coef == 0 {
			continue
		}
		fmt.Fprintf(&b, " + %g \\, %s", coef, texVar(name))
	}
	return b.String()
}

// texVar rewrites the engine's "x_7" display names into LaTeX subscript
// form "x_{7}".
func texVar(name string) string {
	us := strings.LastIndexByte(name, '_')
	if us < 0 {
		return name
	}
	return name[:us] + "_{" + name[us+1:] + "}"
}
