package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{`"error"`},
			excluded: []string{`"warn"`, `"info"`, `"debug"`},
		},
		{
			level:    "warn",
			expected: []string{`"error"`, `"warn"`},
			excluded: []string{`"info"`, `"debug"`},
		},
		{
			level:    "info",
			expected: []string{`"error"`, `"warn"`, `"info"`},
			excluded: []string{`"debug"`},
		},
		{
			level:    "debug",
			expected: []string{`"error"`, `"warn"`, `"info"`, `"debug"`},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			rot := Rotation{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			log := New(tt.level, rot, false)

			log.Debug("debug message")
			log.Info("info message")
			log.Warn("warn message")
			log.Error("error message")
			_ = log.Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			got := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(got, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(got, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestNewWithoutSinks(t *testing.T) {
	log := New("info", Rotation{}, false)
	if log == nil {
		t.Fatal("expected a logger, got nil")
	}
	// Must be safe to use with no outputs configured.
	log.Info("dropped", zap.String("k", "v"))
}

func TestDefaultRotation(t *testing.T) {
	rot := DefaultRotation("/tmp/terraforge.log")

	if rot.Path != "/tmp/terraforge.log" {
		t.Errorf("expected path /tmp/terraforge.log, got %s", rot.Path)
	}
	if rot.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", rot.MaxSizeMB)
	}
	if rot.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", rot.MaxBackups)
	}
	if rot.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", rot.MaxAgeDays)
	}
	if !rot.Compress {
		t.Error("expected Compress to be true")
	}
}
