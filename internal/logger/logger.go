// Package logger holds the process-wide diagnostic logger.
//
// Logs are written to a rotating file only. The terminal belongs to the
// progress display and console log lines would tear it, so there is no
// console sink.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the log file inside the logs directory.
const FileName = "gauge.log"

var (
	// Log is the global logger instance. It is a nop logger until
	// InitWithFile succeeds.
	Log = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// logCommand is the command path attached to every entry, if set.
	logCommand   string
	logCommandMu sync.RWMutex
)

// SetCommand attaches the running command path (e.g. "gauge demo multi")
// to all subsequent log entries. Pass an empty string to clear.
func SetCommand(path string) {
	logCommandMu.Lock()
	defer logCommandMu.Unlock()
	logCommand = path
}

func addContext(event *zerolog.Event) *zerolog.Event {
	logCommandMu.RLock()
	cmd := logCommand
	logCommandMu.RUnlock()
	if cmd != "" {
		event = event.Str("command", cmd)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// It mirrors the logging section of internal/config and is duplicated
// here to avoid an import cycle.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
	Compress    bool
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init resets the global logger to a nop logger.
func Init() {
	Log = zerolog.Nop()
}

// InitWithFile initializes the global logger to write JSON lines to
// logsDir/gauge.log with rotation. If logsDir is empty or cfg disables
// file logging the logger stays nop.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Init()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, FileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   cfg.Compress,
	}

	Log = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// CloseFileWriter closes the file writer if it exists and resets the
// global logger. Call this on program shutdown.
func CloseFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	Init()
	return err
}

// GetLogFilePath returns the path to the current log file, or empty
// string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug starts a debug-level entry.
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info starts an info-level entry.
func Info() *zerolog.Event {
	return addContext(Log.Info())
}

// Warn starts a warn-level entry.
func Warn() *zerolog.Event {
	return addContext(Log.Warn())
}

// Error starts an error-level entry.
func Error() *zerolog.Event {
	return addContext(Log.Error())
}

// Component is a view of the global logger that tags entries with a
// component name. It satisfies progress.Logger and iostreams.Logger.
type Component string

// Debug starts a debug-level entry for the component.
func (c Component) Debug() *zerolog.Event { return Debug().Str("component", string(c)) }

// Info starts an info-level entry for the component.
func (c Component) Info() *zerolog.Event { return Info().Str("component", string(c)) }

// Warn starts a warn-level entry for the component.
func (c Component) Warn() *zerolog.Event { return Warn().Str("component", string(c)) }

// Error starts an error-level entry for the component.
func (c Component) Error() *zerolog.Event { return Error().Str("component", string(c)) }
