package initcmd

import (
	"context"
	"errors"

	"github.com/schmitthub/gauge/internal/cmdutil"
	internalconfig "github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	IOStreams  *iostreams.IOStreams
	ConfigPath func() (string, error)

	Force bool
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:  f.IOStreams,
		ConfigPath: f.ConfigPath,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default gauge.yaml",
		Long: `Writes the built-in defaults to gauge.yaml in the configuration
directory ($GAUGE_CONFIG_DIR, or gauge under the user config directory),
or to the file named by --config.`,
		Example: `  gauge config init
  gauge --config ./gauge.yaml config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams

	path, err := opts.ConfigPath()
	if err != nil {
		return err
	}

	if err := internalconfig.WriteDefault(path, opts.Force); err != nil {
		if errors.Is(err, internalconfig.ErrExists) {
			_ = ios.PrintFailure("%s already exists", path)
			_ = ios.PrintInfo("Use --force to overwrite it")
			return cmdutil.SilentError
		}
		return err
	}

	logger.Info().Str("path", path).Bool("force", opts.Force).Msg("wrote default configuration")
	return ios.PrintSuccess("Wrote %s", path)
}
