package minifiles

import (
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/spf13/cobra"
)

func newLsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "ls [dirs...]",
		Short:   MsgLsShort,
		Long:    MsgLsLong,
		Example: MsgLsExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags, nil)
			if err != nil {
				return err
			}
			renderer, _, err := newRenderer(cmd, cfg)
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
			return renderer.RenderListings(listings)
		},
	}
}
