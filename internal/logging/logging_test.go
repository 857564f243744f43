package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pastepill.log")
	cleanup, err := Setup(path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Printf("hide_recording_pill")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "logging_test.go") || !strings.Contains(string(data), "hide_recording_pill") {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestSetupBadPath(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
