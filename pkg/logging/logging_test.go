package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp dir for log file
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			// Check that log file was created
			logPath := filepath.Join(tempDir, "folderize", "folderize.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")

		got := getLogFilePath()
		want := filepath.Join("/custom/state", "folderize", "folderize.log")
		if got != want {
			t.Errorf("getLogFilePath() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")

		got := getLogFilePath()
		if !strings.HasSuffix(got, filepath.Join("folderize", "folderize.log")) {
			t.Errorf("getLogFilePath() = %q, want a folderize state path", got)
		}
	})
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("commands.convert")

	// The component field must survive into the logger context
	out := captureLoggerOutput(t, logger)
	if !strings.Contains(out, "commands.convert") {
		t.Errorf("logger output %q should name the component", out)
	}
}

func captureLoggerOutput(t *testing.T, logger zerolog.Logger) string {
	t.Helper()

	var sb strings.Builder
	logger = logger.Output(&sb).Level(zerolog.InfoLevel)
	logger.Info().Msg("probe")
	return sb.String()
}
