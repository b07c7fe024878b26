package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/rocketmesh/internal/selector"
	"github.com/Faultbox/rocketmesh/internal/viewer"
)

type infoReport struct {
	Assembly viewer.AssemblyInfo `yaml:"assembly"`
	Mesh     viewer.MeshInfo     `yaml:"mesh"`
	Geometry []string            `yaml:"geometry,omitempty"`
}

func infoCmd() *cobra.Command {
	var components []string
	var showGeometry bool

	cmd := &cobra.Command{
		Use:   "info <rocket.yaml>",
		Short: "Print assembly layout and mesh statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openViewer(args[0])
			if err != nil {
				return err
			}

			var r infoReport
			if r.Assembly, err = v.AssemblyInfo(); err != nil {
				return err
			}
			if r.Mesh, err = v.MeshInfo(selector.Split(components...)...); err != nil {
				return err
			}
			if showGeometry {
				g, err := v.Geometry()
				if err != nil {
					return err
				}
				r.Geometry = describe(g)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(r)
		},
	}

	cmd.Flags().StringSliceVarP(&components, "components", "c", []string{selector.All}, "parts or families to report on")
	cmd.Flags().BoolVar(&showGeometry, "geometry", false, "include the extracted component records")
	return cmd
}
