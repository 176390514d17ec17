package minifiles

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/minifiles/cmd/minifiles/commands/genconfig"
	"github.com/arthur-debert/minifiles/internal/version"
	"github.com/arthur-debert/minifiles/pkg/cobrax/topics"
	"github.com/arthur-debert/minifiles/pkg/config"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/executor"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	verbosity int
	dryRun    bool
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "minifiles",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newEditCmd(flags))
	rootCmd.AddCommand(newLsCmd(flags))
	rootCmd.AddCommand(genconfig.NewCommand(func() (*config.Config, error) {
		return loadConfig(flags, nil)
	}))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds the embedded help topics, rendering markdown with
// glamour on terminals
func installTopics(rootCmd *cobra.Command) {
	dir, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{Extensions: []string{".md", ".txt"}}
	if stdoutIsTerminal() {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	m, err := topics.Load(dir, opts)
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	topics.Install(rootCmd, m)
	rootCmd.SetHelpCommandGroupID("misc")
}

// overrides maps the flags that were set to config keys
func (f *globalFlags) overrides() map[string]interface{} {
	out := make(map[string]interface{})
	if f.format != "" {
		out["ui.format"] = f.format
	}
	return out
}

// loadConfig reads the configuration with extra applied over the global flags
func loadConfig(flags *globalFlags, extra map[string]interface{}) (*config.Config, error) {
	overrides := flags.overrides()
	for k, v := range extra {
		overrides[k] = v
	}

	cfg, err := config.LoadWithOverrides(overrides)
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}
	return cfg, nil
}

// newRenderer builds the renderer for the configured format, writing to cmd's output
func newRenderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(cfg.UI.Format)
	if err != nil {
		return nil, format, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	return renderer, format, err
}

// newSession creates an explorer session for cfg
func newSession(cfg *config.Config) *explorer.Session {
	logger := logging.GetLogger("cmd")
	return explorer.New(explorer.Options{
		Filter:          cfg.Filter(),
		Sorter:          cfg.Sorter(),
		Prefixer:        cfg.Prefixer(),
		PermanentDelete: cfg.Options.PermanentDelete,
		TrashDir:        cfg.Options.TrashDir,
		Events:          executor.LogSink{Logger: logging.GetLogger("events")},
		Logger:          &logger,
	})
}

// directoriesOrCwd returns args, or the current directory when args is empty
func directoriesOrCwd(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
