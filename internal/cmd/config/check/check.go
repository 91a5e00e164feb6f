package check

import (
	"context"
	"fmt"
	"os"

	"github.com/schmitthub/gauge/internal/cmdutil"
	internalconfig "github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/internal/text"
	"github.com/spf13/cobra"
)

var log = logger.Component("config")

// CheckOptions holds options for the config check command.
type CheckOptions struct {
	IOStreams  *iostreams.IOStreams
	Config     func() (*internalconfig.Config, error)
	ConfigPath func() (string, error)
}

// NewCmdCheck creates the config check command.
func NewCmdCheck(f *cmdutil.Factory, runF func(context.Context, *CheckOptions) error) *cobra.Command {
	opts := &CheckOptions{
		IOStreams:  f.IOStreams,
		Config:     f.Config,
		ConfigPath: f.ConfigPath,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate gauge configuration",
		Long: `Loads gauge.yaml together with GAUGE_* environment overrides and
validates the result.

Checks for:
  - YAML syntax and value types
  - Non-negative goal, widths, columns and log rotation limits
  - A known glyph preset`,
		Example: `  # Validate the default configuration file
  gauge config check

  # Validate a specific file
  gauge --config ./gauge.yaml config check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return checkRun(cmd.Context(), opts)
		},
	}

	return cmd
}

// fieldWidth aligns the summary values.
const fieldWidth = 10

func checkRun(_ context.Context, opts *CheckOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	path, err := opts.ConfigPath()
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("checking configuration")

	cfg, err := opts.Config()
	if err != nil {
		if internalconfig.IsNotFound(err) {
			_ = ios.PrintFailure("Configuration file not found")
			fmt.Fprintf(ios.ErrOut, "  %s\n", cs.Red(err.Error()))
			_ = ios.PrintInfo("Run 'gauge config init' to create it")
			return cmdutil.SilentError
		}
		_ = ios.PrintFailure("Configuration is invalid")
		fmt.Fprintf(ios.ErrOut, "  %s\n", cs.Red(err.Error()))
		return cmdutil.SilentError
	}

	if _, err := cs.BarGlyphs(cfg.Bar.Glyphs); err != nil {
		_ = ios.PrintFailure("Configuration is invalid")
		fmt.Fprintf(ios.ErrOut, "  %s\n", cs.Redf("bar.glyphs: %s", err))
		return cmdutil.SilentError
	}

	source := path
	if _, err := os.Stat(path); err != nil {
		source = cs.Muted("(defaults, no file)")
	}
	logFile := logger.GetLogFilePath()
	if logFile == "" {
		logFile = cs.Muted("(disabled)")
	}

	_ = ios.PrintSuccess("Configuration is valid")
	field := func(name, value string) {
		fmt.Fprintf(ios.ErrOut, "  %s%s\n", text.PadRight(name+":", fieldWidth), value)
	}
	field("File", source)
	field("Template", cfg.Bar.Template)
	field("Glyphs", cfg.Bar.Glyphs)
	field("Width", fmt.Sprintf("%d-%d", cfg.Bar.WidthMin, cfg.Bar.WidthMax))
	field("Interval", cfg.Render.MinUpdateInterval.String())
	field("Log file", logFile)

	return nil
}
