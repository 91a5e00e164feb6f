package feed

import (
	"context"
	"strings"
	"testing"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdFeed_Flags(t *testing.T) {
	tio := iostreamstest.New()
	var gotOpts *FeedOptions
	cmd := NewCmdFeed(&cmdutil.Factory{IOStreams: tio.IOStreams}, func(_ context.Context, opts *FeedOptions) error {
		gotOpts = opts
		return nil
	})
	cmd.SetArgs([]string{"-l", "fetch", "--label", "unpack", "--goal", "10", "--manual", "--title", "work"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.Equal(t, []string{"fetch", "unpack"}, gotOpts.Labels)
	assert.Equal(t, 10.0, gotOpts.Goal)
	assert.True(t, gotOpts.Manual)
	assert.Equal(t, "work", gotOpts.Title)
}

func TestNewCmdFeed_NegativeGoal(t *testing.T) {
	tio := iostreamstest.New()
	cmd := NewCmdFeed(&cmdutil.Factory{IOStreams: tio.IOStreams}, nil)
	cmd.SetArgs([]string{"--goal", "-1"})
	cmd.SetErr(tio.ErrBuf)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--goal must not be negative")
}

func TestParseLine(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		line    string
		want    inputLine
		wantErr string
	}{
		{name: "blank", line: "   ", want: inputLine{}},
		{name: "comment", line: "# note", want: inputLine{}},
		{name: "single value", line: "42", want: inputLine{values: []*float64{ptr(42)}}},
		{name: "skip marker", line: "1.5 - 3", want: inputLine{values: []*float64{ptr(1.5), nil, ptr(3)}}},
		{name: "bad value", line: "10 ten", wantErr: `invalid value "ten"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.line)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("log", func(t *testing.T) {
		got, err := parseLine("log  halfway there")
		require.NoError(t, err)
		require.NotNil(t, got.log)
		assert.Equal(t, " halfway there", *got.log)

		got, err = parseLine("log")
		require.NoError(t, err)
		require.NotNil(t, got.log)
		assert.Empty(t, *got.log)
	})
}

func feedOptions(tio *iostreamstest.TestIOStreams, input string) *FeedOptions {
	tio.InBuf.SetInput(input)
	cfg := config.DefaultConfig()
	cfg.Bar.Template = "{label}{value}/{goal}"
	cfg.Render.MinUpdateInterval = 0
	return &FeedOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return cfg, nil },
	}
}

func TestFeedRun_SingleBar(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetStderrTTY(true)
	opts := feedOptions(tio, "0\n50\n100\n")

	require.NoError(t, feedRun(context.Background(), opts))

	assert.Equal(t, "\r0/100\x1b[0K\r\r50/100\x1b[0K\r\r100/100\x1b[0K\r\n\x1b[?25h", tio.ErrBuf.String())
}

func TestFeedRun_LabelsAndGoal(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetStderrTTY(true)
	opts := feedOptions(tio, "1 2\n- 10\n")
	opts.Labels = []string{"a:", "b:"}
	opts.Goal = 10

	require.NoError(t, feedRun(context.Background(), opts))

	out := tio.ErrBuf.String()
	assert.Contains(t, out, "a:1/10")
	assert.Contains(t, out, "b:2/10")
	assert.Contains(t, out, "b:10/10")
	assert.NotContains(t, out, "a:10/10")
}

func TestFeedRun_LogWithoutTerminal(t *testing.T) {
	tio := iostreamstest.New()
	opts := feedOptions(tio, "10\nlog step one\n# ignored\n\n20\n")

	require.NoError(t, feedRun(context.Background(), opts))
	assert.Equal(t, "step one\n", tio.ErrBuf.String())
}

func TestFeedRun_InvalidInput(t *testing.T) {
	tio := iostreamstest.New()
	opts := feedOptions(tio, "10\nlots\n")

	err := feedRun(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, `line 2: invalid value "lots"`, err.Error())
}

func TestFeedRun_StopsAtCompletionUnlessManual(t *testing.T) {
	for _, manual := range []bool{false, true} {
		tio := iostreamstest.New()
		tio.SetStderrTTY(true)
		opts := feedOptions(tio, "100\n- 5\n")
		opts.Manual = manual

		require.NoError(t, feedRun(context.Background(), opts))

		out := tio.ErrBuf.String()
		assert.Equal(t, manual, strings.Contains(out, "5/100"), "manual=%v output %q", manual, out)
	}
}

func TestFeedRun_TerminalInputHint(t *testing.T) {
	tio := iostreamstest.New()
	tio.SetStdinTTY(true)
	opts := feedOptions(tio, "log done\n")

	require.NoError(t, feedRun(context.Background(), opts))
	assert.Equal(t, "[info] Reading values from the terminal, press Ctrl-D to finish\ndone\n", tio.ErrBuf.String())
}
