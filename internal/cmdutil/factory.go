package cmdutil

import (
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/spf13/pflag"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations. Tests construct &cmdutil.Factory{} directly.
type Factory struct {
	// Set at build time via ldflags.
	Version string
	Commit  string

	IOStreams *iostreams.IOStreams

	// ConfigFile is the --config value; empty uses the default location.
	ConfigFile string
	// Flags are the parsed flags of the running command. Changed render
	// flags override the configuration.
	Flags *pflag.FlagSet

	// Config loads the configuration once per process.
	Config func() (*config.Config, error)
	// ConfigPath is the file Config reads: ConfigFile, or the default location.
	ConfigPath func() (string, error)
}
