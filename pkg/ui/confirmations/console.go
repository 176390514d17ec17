// Package confirmations asks the user to approve an action plan before it
// is executed.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/types"
)

// PlanRenderer shows the plan being confirmed
type PlanRenderer interface {
	RenderPlan(plan []types.Action) error
}

// ConsoleDialog prints the plan and reads a y/N answer from a line reader.
// It works on pipes and dumb terminals.
type ConsoleDialog struct {
	renderer PlanRenderer
	in       *bufio.Reader
	out      io.Writer
}

// NewConsoleDialog creates a console confirmation dialog
func NewConsoleDialog(renderer PlanRenderer, in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{renderer: renderer, in: bufio.NewReader(in), out: out}
}

// Confirm shows plan and returns true on "y" or "yes". Anything else,
// including an empty answer, declines.
func (d *ConsoleDialog) Confirm(plan []types.Action) (bool, error) {
	if len(plan) == 0 {
		return true, nil
	}
	if err := d.renderer.RenderPlan(plan); err != nil {
		return false, err
	}

	if _, err := fmt.Fprint(d.out, "\nApply these actions? [y/N]: "); err != nil {
		return false, err
	}
	answer, err := d.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrCancelled, "failed to read user input")
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
