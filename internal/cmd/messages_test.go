package cmd

import (
	"strings"
	"testing"
)

func TestPrintCancelled(t *testing.T) {
	out := captureStderr(t, func() {
		printCancelled()
	})

	if strings.TrimSpace(out) != "Cancelled" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPrintNoResults(t *testing.T) {
	var stdout string
	stderr := captureStderr(t, func() {
		stdout = captureStdout(t, func() {
			printNoResults("No files with at least %d lines under %s", 100, "src")
		})
	})

	if strings.TrimSpace(stderr) != "No files with at least 100 lines under src" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
	if stdout != "" {
		t.Fatalf("expected clean stdout, got %q", stdout)
	}
}
