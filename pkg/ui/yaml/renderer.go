// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/report"
	"gopkg.in/yaml.v3"
)

// Renderer writes one YAML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderListings encodes listings as a sequence
func (r *Renderer) RenderListings(listings []explorer.Listing) error {
	if listings == nil {
		listings = []explorer.Listing{}
	}
	return r.encode(listings)
}

// RenderPlan encodes the plan grouped by source directory
func (r *Renderer) RenderPlan(plan []types.Action) error {
	return r.encode(report.NewPlanDocument(plan))
}

// RenderResults encodes results as a sequence
func (r *Renderer) RenderResults(results []types.ActionResult) error {
	return r.encode(report.NewResultDocuments(results))
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
