// Package loggertest provides test doubles for the logger package.
// TestLogger captures log output for assertions in tests.
// *TestLogger satisfies iostreams.Logger and progress.Logger.
package loggertest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger is a test double for the logger consumers.
// It delegates to a private zerolog.Logger without embedding it,
// exposing only the four level methods.
type TestLogger struct {
	logger zerolog.Logger
	buf    *syncBuffer
}

// New creates a test logger that captures all output to a buffer.
func New() *TestLogger {
	buf := &syncBuffer{}
	return &TestLogger{
		logger: zerolog.New(buf),
		buf:    buf,
	}
}

// NewNop creates a test logger that discards all output.
func NewNop() *TestLogger {
	return &TestLogger{
		logger: zerolog.Nop(),
		buf:    &syncBuffer{},
	}
}

// Debug returns a debug-level zerolog.Event.
func (tl *TestLogger) Debug() *zerolog.Event { return tl.logger.Debug() }

// Info returns an info-level zerolog.Event.
func (tl *TestLogger) Info() *zerolog.Event { return tl.logger.Info() }

// Warn returns a warn-level zerolog.Event.
func (tl *TestLogger) Warn() *zerolog.Event { return tl.logger.Warn() }

// Error returns an error-level zerolog.Event.
func (tl *TestLogger) Error() *zerolog.Event { return tl.logger.Error() }

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }

// Messages returns the "message" field of every captured entry, in order.
func (tl *TestLogger) Messages() []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(tl.Output()))
	for sc.Scan() {
		var entry struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(sc.Bytes(), &entry); err == nil {
			out = append(out, entry.Message)
		}
	}
	return out
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}
