// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/style"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/report"
	"github.com/pterm/pterm"
)

// Renderer styles reports with lipgloss and messages with pterm
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderListings writes listings with styled directory headers
func (r *Renderer) RenderListings(listings []explorer.Listing) error {
	return report.WriteListings(r.output, listings, styler{})
}

// RenderPlan writes the confirmation report with colored verbs
func (r *Renderer) RenderPlan(plan []types.Action) error {
	return report.WritePlan(r.output, plan, styler{})
}

// RenderResults writes results with status indicators
func (r *Renderer) RenderResults(results []types.ActionResult) error {
	return report.WriteResults(r.output, results, styler{})
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, style.FormatError(err))
	return err2
}

// RenderMessage renders a simple message with the pterm info prefix
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}

type styler struct{}

func (styler) Header(s string) string { return style.TitleStyle.Render(s) }
func (styler) Dir(s string) string    { return style.DirStyle.Render(s) }
func (styler) Muted(s string) string  { return style.MutedStyle.Render(s) }

func (styler) Verb(kind types.ActionKind) string {
	return style.Verb(kind, report.VerbWidth)
}

func (styler) Indicator(r types.ActionResult) string {
	switch {
	case r.Skipped:
		return style.SkippedIndicator
	case r.Success:
		return style.SuccessIndicator
	default:
		return style.ErrorIndicator
	}
}
