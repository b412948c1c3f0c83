package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jewels.log")
	flagLogFile, flagLogLevel = path, "debug"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "info" })

	logger, closeLog, err := newLogger(io.Discard, "test")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("round saved", "score", 12)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round saved") || !strings.Contains(string(data), "score=12") {
		t.Errorf("log = %q", data)
	}
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := newLogger(io.Discard, "test"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
