// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/report"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderListings writes listings under their directory
func (r *Renderer) RenderListings(listings []explorer.Listing) error {
	return report.WriteListings(r.output, listings, report.Plain{})
}

// RenderPlan writes the confirmation report
func (r *Renderer) RenderPlan(plan []types.Action) error {
	return report.WritePlan(r.output, plan, report.Plain{})
}

// RenderResults writes one line per result
func (r *Renderer) RenderResults(results []types.ActionResult) error {
	return report.WriteResults(r.output, results, report.Plain{})
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
