package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// resetLoggerState resets all global logger state for test isolation
func resetLoggerState(t *testing.T) {
	t.Helper()
	_ = CloseFileWriter()
	SetCommand("")
	t.Cleanup(func() {
		_ = CloseFileWriter()
		SetCommand("")
	})
}

func readLog(t *testing.T, dir string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit(t *testing.T) {
	resetLoggerState(t)

	Init()

	if Log.GetLevel() != zerolog.Disabled {
		t.Errorf("Init() should produce nop logger (Disabled level), got %v", Log.GetLevel())
	}
}

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}
	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should default to true when nil")
	}

	falseVal := false
	cfg.FileEnabled = &falseVal
	if cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should return false when explicitly set")
	}

	cfg = &LoggingConfig{}
	if cfg.GetMaxSizeMB() != 10 {
		t.Errorf("GetMaxSizeMB should default to 10, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 7 {
		t.Errorf("GetMaxAgeDays should default to 7, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 3 {
		t.Errorf("GetMaxBackups should default to 3, got %d", cfg.GetMaxBackups())
	}

	cfg = &LoggingConfig{MaxSizeMB: 20, MaxAgeDays: 14, MaxBackups: 5}
	if cfg.GetMaxSizeMB() != 20 || cfg.GetMaxAgeDays() != 14 || cfg.GetMaxBackups() != 5 {
		t.Errorf("custom values not returned: %+v", cfg)
	}
}

func TestInitWithFile(t *testing.T) {
	resetLoggerState(t)
	tmpDir := t.TempDir()

	if err := InitWithFile(false, tmpDir, &LoggingConfig{MaxSizeMB: 1}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	if got, want := GetLogFilePath(), filepath.Join(tmpDir, FileName); got != want {
		t.Errorf("GetLogFilePath() = %q, want %q", got, want)
	}

	Info().Msg("info test")
	Debug().Msg("debug hidden")
	if err := CloseFileWriter(); err != nil {
		t.Fatalf("CloseFileWriter failed: %v", err)
	}

	content := readLog(t, tmpDir)
	if !strings.Contains(content, "info test") {
		t.Error("Log file should contain info message")
	}
	if strings.Contains(content, "debug hidden") {
		t.Error("Log file should not contain debug message when debug=false")
	}
}

func TestInitWithFile_DebugLevel(t *testing.T) {
	resetLoggerState(t)
	tmpDir := t.TempDir()

	if err := InitWithFile(true, tmpDir, &LoggingConfig{MaxSizeMB: 1}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	Debug().Msg("debug message")
	CloseFileWriter()

	if !strings.Contains(readLog(t, tmpDir), "debug message") {
		t.Error("Log file should contain debug message when debug=true")
	}
}

func TestInitWithFileDisabled(t *testing.T) {
	resetLoggerState(t)
	tmpDir := t.TempDir()
	disabled := false

	if err := InitWithFile(true, tmpDir, &LoggingConfig{FileEnabled: &disabled}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should be empty when file logging is disabled")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, FileName)); !os.IsNotExist(err) {
		t.Error("Log file should not be created when file logging is disabled")
	}
}

func TestInitWithFileEmptyDirOrNilConfig(t *testing.T) {
	resetLoggerState(t)

	if err := InitWithFile(true, "", &LoggingConfig{}); err != nil {
		t.Fatalf("InitWithFile with empty dir failed: %v", err)
	}
	if err := InitWithFile(true, t.TempDir(), nil); err != nil {
		t.Fatalf("InitWithFile with nil config failed: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should be empty")
	}
	if Log.GetLevel() != zerolog.Disabled {
		t.Error("logger should stay nop")
	}
}

func TestInitWithFilePermissionError(t *testing.T) {
	resetLoggerState(t)

	err := InitWithFile(false, "/dev/null/deeply/nested/path/that/fails", &LoggingConfig{})
	if err == nil {
		t.Fatal("expected an error for an uncreatable directory")
	}
	if !strings.Contains(err.Error(), "failed to create logs directory") {
		t.Errorf("Error should mention directory creation, got: %v", err)
	}
}

func TestCloseFileWriterResetsState(t *testing.T) {
	resetLoggerState(t)

	if err := InitWithFile(false, t.TempDir(), &LoggingConfig{MaxSizeMB: 1}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter failed: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath should return empty after CloseFileWriter")
	}
	if err := CloseFileWriter(); err != nil {
		t.Errorf("Double CloseFileWriter should not error: %v", err)
	}
}

func TestCommandAndComponentInFileLog(t *testing.T) {
	resetLoggerState(t)
	tmpDir := t.TempDir()

	if err := InitWithFile(true, tmpDir, &LoggingConfig{MaxSizeMB: 1}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}

	SetCommand("gauge demo multi")
	Component("progress").Debug().Msg("frame")
	SetCommand("")
	Info().Msg("bare")
	CloseFileWriter()

	lines := strings.Split(strings.TrimSpace(readLog(t, tmpDir)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"command":"gauge demo multi"`) {
		t.Errorf("first entry should carry the command, got %s", lines[0])
	}
	if !strings.Contains(lines[0], `"component":"progress"`) {
		t.Errorf("first entry should carry the component, got %s", lines[0])
	}
	if strings.Contains(lines[1], `"command"`) {
		t.Errorf("cleared command should not be logged, got %s", lines[1])
	}
}

func TestComponentOnNopLogger(t *testing.T) {
	resetLoggerState(t)

	// nil events from a disabled logger must be safe to chain
	Component("x").Debug().Str("k", "v").Msg("dropped")
	Component("x").Error().Msg("dropped")
}
