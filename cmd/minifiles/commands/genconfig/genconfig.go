package genconfig

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/minifiles/pkg/config"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/spf13/cobra"
)

// LoadFunc loads the effective configuration
type LoadFunc func() (*config.Config, error)

// NewCommand creates the gen-config command
func NewCommand(load LoadFunc) *cobra.Command {
	var (
		write     bool
		effective bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if effective {
				cfg, err := load()
				if err != nil {
					return err
				}
				if content, err = cfg.TOML(); err != nil {
					return err
				}
			}

			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), content)
				return err
			}
			return writeFile(cmd.OutOrStdout(), paths.ProjectConfigFileName, content, force)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func writeFile(out io.Writer, path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists, use --force to overwrite", path).
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}
	_, err := fmt.Fprintf(out, MsgWritten, path)
	return err
}
