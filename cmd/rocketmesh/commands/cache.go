package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/rocketmesh/internal/cache"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the mesh cache",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached mesh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.New(cfg.CacheDir())
			if err != nil {
				return err
			}
			return c.Clear()
		},
	}

	statCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the cache directory and entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cache.New(cfg.CacheDir())
			if err != nil {
				return err
			}
			n, err := c.Len()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Directory: %s\n", c.Dir())
			fmt.Fprintf(cmd.OutOrStdout(), "Entries:   %d\n", n)
			return nil
		},
	}

	cmd.AddCommand(clearCmd, statCmd)
	return cmd
}
