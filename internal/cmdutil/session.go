package cmdutil

import (
	"context"
	"errors"

	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/internal/signals"
	"github.com/schmitthub/gauge/pkg/progress"
)

// ExitInterrupted is the exit status after SIGINT or SIGTERM.
const ExitInterrupted = 130

// RunProgress drives p with fn until fn returns or the process is
// interrupted. Terminal resizes are applied to p while fn runs. p is
// always completed with a visible cursor before RunProgress returns, and
// an interrupt is reported as an ExitError.
func RunProgress(ctx context.Context, ios *iostreams.IOStreams, p *progress.Progress, fn func(context.Context) error) error {
	ctx, cancel := signals.SetupSignalContext(ctx)
	defer cancel()

	resize := signals.NewResizeHandler(
		func() int {
			ios.InvalidateTerminalSizeCache()
			return ios.TerminalWidth()
		},
		p.SetColumns,
	)
	resize.StartWithContext(ctx)
	defer resize.Stop()

	err := fn(ctx)

	p.Flush()
	p.Complete()

	if err == nil {
		err = p.Err()
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		logger.Info().Msg("progress interrupted")
		return &ExitError{Code: ExitInterrupted}
	}
	return err
}
