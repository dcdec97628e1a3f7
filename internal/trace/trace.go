// Package trace renders a symcore rewrite trace for human consumption, the
// way the CLI's "trace" subcommand displays each step a Normalize call
// took on its way to a fixed point.
package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/SymaLang/symacore/pkg/symcore"
)

// Tracer renders a recorded step sequence (symcore.NormalizeWithTrace's
// output) to a writer.
type Tracer struct {
	Steps []symcore.TraceStep
}

// New wraps steps for rendering.
func New(steps []symcore.TraceStep) *Tracer {
	return &Tracer{Steps: steps}
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	beforeColor = color.New(color.FgRed)
	afterColor  = color.New(color.FgGreen)
	pathColor   = color.New(color.Faint)
)

// Render writes one block per step: the rule name and path, the term
// before the rewrite, and the term after it.
func (t *Tracer) Render(w io.Writer) error {
	for _, s := range t.Steps {
		if _, err := fmt.Fprintln(w, headerColor.Sprintf("step %d: %s", s.Step, s.Rule)); err != nil {
			return err
		}
		if len(s.Path) > 0 {
			if _, err := fmt.Fprintln(w, pathColor.Sprintf("  path: %v", s.Path)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", beforeColor.Sprint("-"), s.Before.String()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", afterColor.Sprint("+"), s.After.String()); err != nil {
			return err
		}
	}
	return nil
}
