package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/pkg/progress"
	"github.com/spf13/cobra"
)

var log = logger.Component("demo")

// Demo scenarios.
const (
	ScenarioSingle = "single"
	ScenarioMulti  = "multi"
	ScenarioLog    = "log"
)

// DemoOptions holds options for the demo command.
type DemoOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*config.Config, error)

	Scenario string
	Steps    int
	Delay    time.Duration
	Title    string
}

// NewCmdDemo creates the demo command.
func NewCmdDemo(f *cmdutil.Factory, runF func(context.Context, *DemoOptions) error) *cobra.Command {
	opts := &DemoOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "demo [single|multi|log]",
		Short: "Animate sample progress bars",
		Long: `Animates simulated work so templates, glyph presets and render
settings can be previewed in the current terminal.

Scenarios:
  single   one bar below a title (default)
  multi    three stacked bars advancing at different speeds
  log      one bar with messages logged above it`,
		Example: `  gauge demo
  gauge demo multi --glyphs block
  gauge demo log --steps 20 --delay 100ms`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{ScenarioSingle, ScenarioMulti, ScenarioLog},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Scenario = ScenarioSingle
			if len(args) == 1 {
				opts.Scenario = args[0]
			}
			switch opts.Scenario {
			case ScenarioSingle, ScenarioMulti, ScenarioLog:
			default:
				return cmdutil.FlagErrorf("unknown scenario %q (want single, multi or log)", opts.Scenario)
			}
			if opts.Steps < 1 {
				return cmdutil.FlagErrorf("--steps must be at least 1, got %d", opts.Steps)
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return demoRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Steps, "steps", 50, "Number of updates to animate")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 40*time.Millisecond, "Pause between updates")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Title printed above the bars")

	return cmd
}

func demoRun(ctx context.Context, opts *DemoOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("gauge demo: %s", opts.Scenario)
	}
	p, err := cmdutil.NewProgress(opts.IOStreams, cfg, func(o *progress.Options) {
		o.Title = []string{title}
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("scenario", opts.Scenario).
		Int("steps", opts.Steps).
		Dur("delay", opts.Delay).
		Msg("demo starting")

	return cmdutil.RunProgress(ctx, opts.IOStreams, p, func(ctx context.Context) error {
		return animate(ctx, p, cfg.Bar.Goal, opts)
	})
}

// lane is one simulated task of the multi scenario.
type lane struct {
	label string
	speed float64 // fraction of the goal gained per step
}

var lanes = []lane{
	{"alpha", 1},
	{"beta", 0.6},
	{"gamma", 0.35},
}

func animate(ctx context.Context, p *progress.Progress, goal float64, opts *DemoOptions) error {
	if goal <= 0 {
		goal = progress.DefaultGoal
	}
	at := func(i int, speed float64) float64 {
		return min(goal*float64(i)*speed/float64(opts.Steps), goal)
	}

	// the slowest multi lane needs more steps to reach the goal
	steps := opts.Steps
	if opts.Scenario == ScenarioMulti {
		steps = int(float64(opts.Steps)/lanes[len(lanes)-1].speed) + 1
	}

	for i := 0; i <= steps; i++ {
		switch opts.Scenario {
		case ScenarioMulti:
			updates := make([]*progress.LineUpdate, len(lanes))
			for j, l := range lanes {
				updates[j] = progress.Set(at(i, l.speed), progress.WithID(l.label), progress.WithLabel(l.label))
			}
			p.UpdateMany(updates...)
		case ScenarioLog:
			p.Update(at(i, 1), progress.WithLabel("task"))
			if i > 0 && i%10 == 0 {
				p.Log(fmt.Sprintf("checkpoint %d/%d", i, steps))
			}
		default:
			p.Update(at(i, 1), progress.WithLabel("download"))
		}

		if i == steps {
			break
		}
		if err := sleep(ctx, opts.Delay); err != nil {
			return err
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
