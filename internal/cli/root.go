package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/86sanj/datasetinsights/internal/config"
	"github.com/86sanj/datasetinsights/internal/utils"
)

var version = "dev"

// SetVersion sets the version string displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v string) {
	version = v
}

// configFlag is the persistent --config value, consulted by every
// command through loadConfig.
var configFlag string

// Execute runs the datasetinsights CLI. The logger is attached to the
// command context and accessible to all commands via
// loggerFromContext; --verbose switches it to debug level.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "datasetinsights",
		Short:        "Visualize synthetic dataset annotations and statistics",
		Long:         `datasetinsights renders bounding-box annotations, semantic segmentation maps, statistics charts and image grids for synthetic datasets.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.config/datasetinsights/config.json)")

	root.AddCommand(newAnnotateCmd())
	root.AddCommand(newSegmapCmd())
	root.AddCommand(newChartCmd())
	root.AddCommand(newGridCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig resolves the effective configuration: the --config file
// when given, the default config file when present, built-in defaults
// otherwise.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		candidate := config.GetConfigPath()
		if !utils.FileExists(candidate) {
			return config.Default(), nil
		}
		path = candidate
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intOr returns the flag value when set, the config fallback
// otherwise.
func intOr(flag, fallback int) int {
	if flag > 0 {
		return flag
	}
	return fallback
}
