package confirmations

import (
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/pterm/pterm"
)

// InteractiveDialog prints the plan and asks with a pterm confirm prompt
type InteractiveDialog struct {
	renderer PlanRenderer
	prompt   *pterm.InteractiveConfirmPrinter
}

// NewInteractiveDialog creates a dialog for interactive terminals
func NewInteractiveDialog(renderer PlanRenderer) *InteractiveDialog {
	prompt := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Apply these actions?").
		WithDefaultValue(false)
	return &InteractiveDialog{renderer: renderer, prompt: prompt}
}

// Confirm shows plan and waits for the answer
func (d *InteractiveDialog) Confirm(plan []types.Action) (bool, error) {
	if len(plan) == 0 {
		return true, nil
	}
	if err := d.renderer.RenderPlan(plan); err != nil {
		return false, err
	}

	ok, err := d.prompt.Show()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCancelled, "confirmation prompt failed")
	}
	return ok, nil
}
