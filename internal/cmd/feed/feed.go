package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/pkg/progress"
	"github.com/spf13/cobra"
)

var log = logger.Component("feed")

// FeedOptions holds options for the feed command.
type FeedOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*config.Config, error)

	Labels []string
	Title  string
	Goal   float64
	Manual bool
}

// NewCmdFeed creates the feed command.
func NewCmdFeed(f *cmdutil.Factory, runF func(context.Context, *FeedOptions) error) *cobra.Command {
	opts := &FeedOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Draw progress bars from values read on stdin",
		Long: `Reads one update per line from standard input and draws the bars on
standard error, so shell pipelines can report progress.

Each line holds one value per bar, separated by whitespace. A "-" leaves
that bar unchanged. A line starting with "log " prints the rest of the
line above the bars. Blank lines and lines starting with "#" are ignored.

The session ends at end of input, or earlier once every bar reaches its
goal unless --manual is set.`,
		Example: `  # one bar
  seq 0 10 100 | gauge feed

  # two labelled bars with a log message
  printf '10 5\nlog halfway\n100 100\n' | gauge feed --label fetch --label unpack`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Goal < 0 {
				return cmdutil.FlagErrorf("--goal must not be negative, got %v", opts.Goal)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return feedRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Labels, "label", "l", nil, "Label for the next bar (repeatable)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Title printed above the bars")
	cmd.Flags().Float64Var(&opts.Goal, "goal", 0, "Goal of every bar (0 uses bar.goal)")
	cmd.Flags().BoolVar(&opts.Manual, "manual", false, "Keep reading after every bar completes")

	return cmd
}

func feedRun(ctx context.Context, opts *FeedOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	if opts.IOStreams.IsInputTTY() {
		_ = opts.IOStreams.PrintInfo("Reading values from the terminal, press Ctrl-D to finish")
	}

	p, err := cmdutil.NewProgress(opts.IOStreams, cfg, func(o *progress.Options) {
		if opts.Title != "" {
			o.Title = []string{opts.Title}
		}
		if opts.Goal > 0 {
			o.Defaults = append(o.Defaults, progress.WithGoal(opts.Goal))
		}
		o.ManualComplete = opts.Manual
	})
	if err != nil {
		return err
	}

	return cmdutil.RunProgress(ctx, opts.IOStreams, p, func(ctx context.Context) error {
		return consume(ctx, opts.IOStreams.In, p, opts.Labels)
	})
}

// consume applies input lines to p until EOF or ctx ends.
func consume(ctx context.Context, r io.Reader, p *progress.Progress, labels []string) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				log.Debug().Int("lines", n).Msg("input finished")
				return nil
			}
			n++

			cmd, err := parseLine(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			switch {
			case cmd.log != nil:
				p.Log(*cmd.log)
			case len(cmd.values) > 0:
				updates := make([]*progress.LineUpdate, len(cmd.values))
				for i, v := range cmd.values {
					if v == nil {
						continue
					}
					var lineOpts []progress.LineOption
					if i < len(labels) {
						lineOpts = append(lineOpts, progress.WithLabel(labels[i]))
					}
					updates[i] = progress.Set(*v, lineOpts...)
				}
				p.UpdateMany(updates...)
			}
		}
	}
}

// inputLine is one parsed line of feed input.
type inputLine struct {
	log    *string
	values []*float64
}

func parseLine(line string) (inputLine, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "", strings.HasPrefix(trimmed, "#"):
		return inputLine{}, nil
	case trimmed == "log":
		msg := ""
		return inputLine{log: &msg}, nil
	case strings.HasPrefix(trimmed, "log "):
		msg := strings.TrimPrefix(trimmed, "log ")
		return inputLine{log: &msg}, nil
	}

	fields := strings.Fields(trimmed)
	values := make([]*float64, len(fields))
	for i, f := range fields {
		if f == "-" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return inputLine{}, fmt.Errorf("invalid value %q", f)
		}
		values[i] = &v
	}
	return inputLine{values: values}, nil
}
