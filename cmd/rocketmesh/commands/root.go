package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/rocketmesh/internal/cache"
	"github.com/Faultbox/rocketmesh/internal/config"
	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/internal/rocketfile"
	"github.com/Faultbox/rocketmesh/internal/viewer"
)

var (
	configPath string
	overrides  config.Overrides
	cfg        *config.Config
)

// Execute runs the CLI. Failures are reported through the logger.
func Execute() error {
	// Console logging until the config is loaded, so early failures show.
	if err := logger.Init(logger.CLIOptions("info", "")); err != nil {
		return err
	}
	return execute(os.Args[1:])
}

func execute(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}
	logger.Sync()
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rocketmesh",
		Short:         "Generate 3D meshes of a rocket",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath, overrides)
			if err != nil {
				return err
			}
			if err := logger.Init(logger.CLIOptions(cfg.Logging.Level, cfg.Logging.LogFile)); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&configPath, "config", "", "config file (default ./rocketmesh.yaml or the user config dir)")
	f.BoolVar(&overrides.Debug, "debug", false, "enable debug logging")
	f.StringVar(&overrides.CacheDir, "cache-dir", "", "mesh cache directory")
	f.BoolVar(&overrides.NoCache, "no-cache", false, "do not read or write the mesh cache")
	f.StringVar(&overrides.LogFile, "log-file", "", "also write logs to this file")

	root.AddCommand(infoCmd(), exportCmd(), cacheCmd(), configCmd())
	return root
}

func motorDefaults(m config.MotorConfig) geometry.MotorDefaults {
	return geometry.MotorDefaults{
		CasingThickness:         m.CasingThickness,
		CasingMargin:            m.CasingMargin,
		NozzleConvergenceLength: m.NozzleConvergenceLength,
		NozzleDivergenceLength:  m.NozzleDivergenceLength,
	}
}

// openViewer loads a rocket file and sets up a viewer according to cfg.
func openViewer(path string) (*viewer.Viewer, error) {
	f, err := rocketfile.Load(path)
	if err != nil {
		return nil, err
	}

	opts := []viewer.Option{viewer.WithMotorDefaults(motorDefaults(cfg.Motor))}
	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.CacheDir())
		if err != nil {
			// The cache is an optimisation; run without it.
			logger.Warn("mesh cache unavailable", zap.Error(err))
		} else {
			opts = append(opts, viewer.WithCache(c))
		}
	}
	return viewer.New(f.Rocket(), opts...), nil
}
