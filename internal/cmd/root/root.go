package root

import (
	configcmd "github.com/schmitthub/gauge/internal/cmd/config"
	"github.com/schmitthub/gauge/internal/cmd/demo"
	"github.com/schmitthub/gauge/internal/cmd/feed"
	versioncmd "github.com/schmitthub/gauge/internal/cmd/version"
	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the gauge CLI.
func NewCmdRoot(f *cmdutil.Factory, version, commit string) *cobra.Command {
	var (
		debug      bool
		noColor    bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Draw live progress bars in the terminal",
		Long: `Gauge draws one or more live-updating progress bars on standard error,
redrawing them in place while messages scroll above.

Quick start:
  gauge demo               # Preview the default bar
  seq 0 100 | gauge feed   # Drive a bar from a pipeline
  gauge config init        # Write a gauge.yaml to customize templates

Settings are read from gauge.yaml, then GAUGE_* environment variables
(e.g. GAUGE_BAR_GLYPHS=block), then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor && f.IOStreams != nil {
				f.IOStreams.SetColorEnabled(false)
			}
			f.ConfigFile = configFile
			f.Flags = cmd.Flags()
			initializeLogger(f, debug)
			logger.SetCommand(cmd.CommandPath())

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("gauge starting")

			return nil
		},
		Version: version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to gauge.yaml")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output and glyphs")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.SetVersionTemplate(versioncmd.Format(version, commit))

	cmd.AddCommand(demo.NewCmdDemo(f, nil))
	cmd.AddCommand(feed.NewCmdFeed(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, commit))

	return cmd
}

// initializeLogger sets up file logging from the loaded configuration.
// Logging stays disabled when the configuration cannot be loaded; the
// command reports that error itself.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	logger.Init()
	if f.Config == nil {
		return
	}

	cfg, err := f.Config()
	if err != nil {
		return
	}

	logsDir, err := cfg.LogsDir()
	if err != nil {
		return
	}

	if err := logger.InitWithFile(debug, logsDir, cfg.LoggerConfig()); err != nil {
		logger.Init()
		if f.IOStreams != nil {
			_ = f.IOStreams.PrintWarning("file logging unavailable: %s", err)
		}
	}
}
