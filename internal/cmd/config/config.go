package config

import (
	"github.com/schmitthub/gauge/internal/cmd/config/check"
	"github.com/schmitthub/gauge/internal/cmd/config/initcmd"
	"github.com/schmitthub/gauge/internal/cmd/config/show"
	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Long:  `Commands for inspecting, validating and creating gauge configuration.`,
	}

	cmd.AddCommand(check.NewCmdCheck(f, nil))
	cmd.AddCommand(show.NewCmdShow(f, nil))
	cmd.AddCommand(initcmd.NewCmdInit(f, nil))

	return cmd
}
