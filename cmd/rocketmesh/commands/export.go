package commands

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/rocketmesh/internal/selector"
)

func exportCmd() *cobra.Command {
	var (
		output     string
		components []string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "export <rocket.yaml>",
		Short: "Write the selected parts as one STL mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openViewer(args[0])
			if err != nil {
				return err
			}
			if force {
				if _, err := v.Generate(true); err != nil {
					return err
				}
			}

			sel := components
			if len(sel) == 0 {
				sel = cfg.Export.Components
			}
			return v.Export(output, selector.Split(sel...)...)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "rocket.stl", "output file")
	cmd.Flags().StringSliceVarP(&components, "components", "c", nil, "parts or families to export (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "rebuild every mesh, ignoring cached entries")
	return cmd
}
