// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/report"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

// RenderListings encodes listings as an array
func (r *Renderer) RenderListings(listings []explorer.Listing) error {
	if listings == nil {
		listings = []explorer.Listing{}
	}
	return r.encoder.Encode(listings)
}

// RenderPlan encodes the plan grouped by source directory
func (r *Renderer) RenderPlan(plan []types.Action) error {
	return r.encoder.Encode(report.NewPlanDocument(plan))
}

// RenderResults encodes results as an array
func (r *Renderer) RenderResults(results []types.ActionResult) error {
	return r.encoder.Encode(report.NewResultDocuments(results))
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
