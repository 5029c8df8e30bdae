package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	// Test normal mode (non-debug)
	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if Logger == nil {
		t.Fatal("Init() did not set the global Logger")
	}

	// Log directory should have been created
	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Init() did not create log directory %s", logDir)
	}
}

func TestInitDebug(t *testing.T) {
	tempDir := t.TempDir()

	err := Init(Config{
		Debug:     true,
		ConfigDir: tempDir,
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if Logger == nil {
		t.Fatal("Init() did not set the global Logger")
	}
}

func TestHelpersWithNilLogger(t *testing.T) {
	// Helpers must not panic when Init was never called
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("debug message", "key", "value")
	Info("info message")
	Warn("warn message")
	Error("error message", "error", os.ErrNotExist)
}
