// Package gauge is the CLI entry point shared by cmd/gauge and its tests.
package gauge

import (
	"context"
	"errors"
	"fmt"

	"github.com/schmitthub/gauge/internal/cmd/factory"
	"github.com/schmitthub/gauge/internal/cmd/root"
	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Main runs the gauge CLI and returns the process exit status.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f, Version, Commit)

	cmd, err := rootCmd.ExecuteContextC(context.Background())
	if err == nil {
		return exitOK
	}
	if cmd == nil {
		cmd = rootCmd
	}

	stderr := f.IOStreams.ErrOut
	var (
		exitErr *cmdutil.ExitError
		flagErr *cmdutil.FlagError
	)
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, cmdutil.SilentError):
		return exitError
	case errors.As(err, &flagErr), isCobraUsageError(err):
		fmt.Fprintf(stderr, "Error: %s\n\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}

	logger.Error().Err(err).Msg("command failed")
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return exitError
}
