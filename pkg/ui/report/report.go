// Package report lays out confirmation reports, results and listings for
// the human readable renderers, and builds the documents the machine
// readable ones encode.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/actions"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/types"
)

// Header opens every confirmation report
const Header = "CONFIRM FILE SYSTEM ACTIONS"

// VerbWidth is the width of the widest action verb
const VerbWidth = 6

// Separator sits between the verb and the action details
const Separator = "│"

// Styler decorates report fragments
type Styler interface {
	Header(s string) string
	Dir(s string) string
	Verb(kind types.ActionKind) string
	Muted(s string) string
	Indicator(r types.ActionResult) string
}

// Plain is a Styler that leaves text untouched
type Plain struct{}

func (Plain) Header(s string) string { return s }
func (Plain) Dir(s string) string    { return s }
func (Plain) Muted(s string) string  { return s }

func (Plain) Verb(kind types.ActionKind) string {
	return fmt.Sprintf("%-*s", VerbWidth, kind.Verb())
}

func (Plain) Indicator(r types.ActionResult) string {
	switch {
	case r.Skipped:
		return "skip"
	case r.Success:
		return "ok  "
	default:
		return "FAIL"
	}
}

// WritePlan writes the confirmation report of plan, grouped by source
// directory
func WritePlan(w io.Writer, plan []types.Action, st Styler) error {
	var b strings.Builder
	b.WriteString(st.Header(Header))
	b.WriteString("\n")

	for _, g := range actions.GroupBySourceDir(plan) {
		b.WriteString("\n")
		b.WriteString(st.Dir(g.Dir))
		b.WriteString("\n")
		for _, a := range g.Actions {
			fmt.Fprintf(&b, "  %s %s %s\n", st.Verb(a.Kind), Separator, Details(a, g.Dir))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteResults writes one line per result followed by a summary
func WriteResults(w io.Writer, results []types.ActionResult, st Styler) error {
	var b strings.Builder
	failed, skipped := 0, 0
	for _, r := range results {
		fmt.Fprintf(&b, "%s %s %s %s", st.Indicator(r), st.Verb(r.Action.Kind), Separator, Details(r.Action, ""))
		if r.Error != nil {
			fmt.Fprintf(&b, ": %s", r.Error.Error())
		}
		b.WriteString("\n")

		switch {
		case r.Skipped:
			skipped++
		case !r.Success:
			failed++
		}
	}
	b.WriteString(st.Muted(Summary(len(results), failed, skipped)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteListings writes every listing under its directory
func WriteListings(w io.Writer, listings []explorer.Listing, st Styler) error {
	var b strings.Builder
	for i, l := range listings {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(st.Dir(l.Dir))
		b.WriteString("\n")
		for _, line := range l.Lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Details describes an action with paths shown relative to dir where possible
func Details(a types.Action, dir string) string {
	switch a.Kind {
	case types.ActionCreate:
		kind := "file"
		if a.CreatesDir() {
			kind = "directory"
		}
		return fmt.Sprintf("%s (%s)", relative(dir, a.To), kind)
	case types.ActionDelete:
		if a.IsPermanent() {
			return fmt.Sprintf("%s (permanently)", relative(dir, a.From))
		}
		return fmt.Sprintf("%s (to trash)", relative(dir, a.From))
	default:
		return fmt.Sprintf("%s => %s", relative(dir, a.From), relative(dir, a.To))
	}
}

// Summary is the closing line of a results report
func Summary(total, failed, skipped int) string {
	noun := "actions"
	if total == 1 {
		noun = "action"
	}
	return fmt.Sprintf("%d %s, %d failed, %d skipped", total, noun, failed, skipped)
}

func relative(dir, path string) string {
	trimmed := paths.TrimTrailingSep(path)
	if dir == "" || !paths.IsDescendant(trimmed, dir) {
		return trimmed
	}
	rel, err := filepath.Rel(dir, trimmed)
	if err != nil {
		return trimmed
	}
	return rel
}

// PlanDocument is the machine readable form of a plan
type PlanDocument struct {
	Groups []actions.Group `json:"groups" yaml:"groups"`
}

// NewPlanDocument groups plan by source directory
func NewPlanDocument(plan []types.Action) PlanDocument {
	return PlanDocument{Groups: actions.GroupBySourceDir(plan)}
}

// ResultDocument is the machine readable form of one result
type ResultDocument struct {
	Action     types.Action `json:"action" yaml:"action"`
	Success    bool         `json:"success" yaml:"success"`
	Skipped    bool         `json:"skipped" yaml:"skipped"`
	Error      string       `json:"error,omitempty" yaml:"error,omitempty"`
	Code       string       `json:"code,omitempty" yaml:"code,omitempty"`
	Message    string       `json:"message,omitempty" yaml:"message,omitempty"`
	DurationMS int64        `json:"duration_ms" yaml:"duration_ms"`
}

// NewResultDocuments converts results for encoding
func NewResultDocuments(results []types.ActionResult) []ResultDocument {
	docs := make([]ResultDocument, len(results))
	for i, r := range results {
		docs[i] = ResultDocument{
			Action:     r.Action,
			Success:    r.Success,
			Skipped:    r.Skipped,
			Message:    r.Message,
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Error != nil {
			docs[i].Error = r.Error.Error()
			docs[i].Code = string(errors.GetErrorCode(r.Error))
		}
	}
	return docs
}
