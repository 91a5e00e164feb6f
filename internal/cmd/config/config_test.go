package config

import (
	"testing"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/iostreams/iostreamstest"
)

func TestNewCmdConfig(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}
	cmd := NewCmdConfig(f)

	if cmd.Use != "config" {
		t.Errorf("expected Use 'config', got '%s'", cmd.Use)
	}

	found := map[string]bool{}
	for _, sub := range cmd.Commands() {
		found[sub.Use] = true
	}
	for _, want := range []string{"check", "show", "init"} {
		if !found[want] {
			t.Errorf("expected %q subcommand to be registered", want)
		}
	}
}
