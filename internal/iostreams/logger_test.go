package iostreams

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/pkg/progress"
)

// Compile-time checks: the production loggers satisfy Logger, and Logger
// can be passed wherever a progress.Logger is expected.
var (
	_ Logger          = (*zerolog.Logger)(nil)
	_ Logger          = logger.Component("")
	_ progress.Logger = Logger(nil)
)

func TestZerologLogger_SatisfiesInterface(t *testing.T) {
	zl := zerolog.New(nil)
	var l Logger = &zl

	if l.Debug() == nil {
		t.Error("Debug() should return non-nil event")
	}
	if l.Info() == nil {
		t.Error("Info() should return non-nil event")
	}
	if l.Warn() == nil {
		t.Error("Warn() should return non-nil event")
	}
	if l.Error() == nil {
		t.Error("Error() should return non-nil event")
	}
}
