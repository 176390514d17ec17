// Package ui renders listings, action plans and execution results in
// terminal, text, JSON, YAML or XML form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui/json"
	"github.com/arthur-debert/minifiles/pkg/ui/terminal"
	"github.com/arthur-debert/minifiles/pkg/ui/text"
	"github.com/arthur-debert/minifiles/pkg/ui/xml"
	"github.com/arthur-debert/minifiles/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderListings renders directory listings as shown to the editor
	RenderListings(listings []explorer.Listing) error

	// RenderPlan renders the confirmation report of an action plan
	RenderPlan(plan []types.Action) error

	// RenderResults renders the outcome of an execution
	RenderResults(results []types.ActionResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	case FormatXML:
		return xml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
