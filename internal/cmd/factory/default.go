package factory

import (
	"sync"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/gauge/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	ios.Logger = logger.Component("progress")

	if ios.IsStderrTTY() {
		ios.DetectTerminalTheme()
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	var (
		configOnce sync.Once
		configData *config.Config
		configErr  error
	)
	f.Config = func() (*config.Config, error) {
		configOnce.Do(func() {
			configData, configErr = config.NewLoader(f.ConfigFile).WithFlags(f.Flags).Load()
		})
		return configData, configErr
	}

	f.ConfigPath = func() (string, error) {
		return config.NewLoader(f.ConfigFile).Path()
	}

	return f
}
