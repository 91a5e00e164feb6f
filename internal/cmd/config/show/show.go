package show

import (
	"context"

	"github.com/schmitthub/gauge/internal/cmdutil"
	internalconfig "github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/spf13/cobra"
)

// ShowOptions holds options for the config show command.
type ShowOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*internalconfig.Config, error)

	Defaults bool
}

// NewCmdShow creates the config show command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *ShowOptions) error) *cobra.Command {
	opts := &ShowOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration gauge would use after applying gauge.yaml,
GAUGE_* environment variables and command-line flags.`,
		Example: `  gauge config show
  GAUGE_BAR_GLYPHS=block gauge config show
  gauge config show --defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Defaults, "defaults", false, "Print the built-in defaults instead")

	return cmd
}

func showRun(_ context.Context, opts *ShowOptions) error {
	cfg := internalconfig.DefaultConfig()
	if !opts.Defaults {
		var err error
		if cfg, err = opts.Config(); err != nil {
			return err
		}
	}

	data, err := internalconfig.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = opts.IOStreams.Out.Write(data)
	return err
}
