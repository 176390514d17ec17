package minifiles

import (
	"os"

	"github.com/arthur-debert/minifiles/pkg/config"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/ui"
	"github.com/arthur-debert/minifiles/pkg/ui/confirmations"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newEditCmd(flags *globalFlags) *cobra.Command {
	var (
		yes       bool
		permanent bool
	)

	cmd := &cobra.Command{
		Use:     "edit [dirs...]",
		Short:   MsgEditShort,
		Long:    MsgEditLong,
		Example: MsgEditExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.edit")

			extra := map[string]interface{}{}
			if permanent {
				extra["options.permanent_delete"] = true
			}
			cfg, err := loadConfig(flags, extra)
			if err != nil {
				return err
			}
			renderer, format, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}

			session := newSession(cfg)
			listings := make([]explorer.Listing, 0, len(args))
			for _, dir := range directoriesOrCwd(args) {
				l, err := session.Listing(dir)
				if err != nil {
					return err
				}
				listings = append(listings, l)
			}

			tmp, err := os.MkdirTemp("", "minifiles-")
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, MsgErrTempDir)
			}
			defer func() { _ = os.RemoveAll(tmp) }()

			files, err := writeListings(tmp, listings)
			if err != nil {
				return err
			}
			if err := runEditor(cmd, files); err != nil {
				return err
			}
			lines, err := readListings(files, listings)
			if err != nil {
				return err
			}

			if flags.dryRun {
				plan, err := session.Plan(lines)
				if err != nil {
					return err
				}
				if len(plan) == 0 {
					return renderer.RenderMessage(MsgNoChanges)
				}
				if err := renderer.RenderPlan(plan); err != nil {
					return err
				}
				if !format.IsMachine() {
					return renderer.RenderMessage(MsgDryRunNotice)
				}
				return nil
			}

			confirmer := newConfirmer(cmd, cfg, format, renderer, yes)
			result, err := session.Synchronize(lines, confirmer)
			if err != nil {
				return err
			}

			switch {
			case len(result.Actions) == 0:
				return renderer.RenderMessage(MsgNoChanges)
			case result.Cancelled:
				return renderer.RenderMessage(MsgCancelled)
			}
			if err := renderer.RenderResults(result.Results); err != nil {
				return err
			}

			var failed int
			for _, r := range result.Failed() {
				if !r.Skipped {
					failed++
				}
			}
			logger.Info().
				Int("actions", len(result.Results)).
				Int("failed", failed).
				Msg("Edit applied")
			if failed > 0 {
				return errors.Newf(errors.ErrActionExecute, MsgErrFailedCount, failed, len(result.Results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVar(&permanent, "permanent", false, MsgFlagPermanent)

	return cmd
}

// newConfirmer picks how the plan is approved. Machine formats keep stdout
// for the results, so their plan is shown as text on stderr.
func newConfirmer(cmd *cobra.Command, cfg *config.Config, format ui.Format, renderer ui.Renderer, yes bool) explorer.Confirmer {
	if yes || !cfg.UI.Confirm {
		return explorer.AutoConfirm{}
	}

	out := cmd.OutOrStdout()
	planRenderer := confirmations.PlanRenderer(renderer)
	if format.IsMachine() {
		out = cmd.ErrOrStderr()
		if r, err := ui.NewRenderer(ui.FormatText, out); err == nil {
			planRenderer = r
		}
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return confirmations.NewInteractiveDialog(planRenderer)
	}
	return confirmations.NewConsoleDialog(planRenderer, cmd.InOrStdin(), out)
}
