package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestExecute_OutputModeFromEnv(t *testing.T) {
	withTestConfig(t)
	t.Setenv("LAYERTRIM_OUTPUT", "json")
	path := writeTestFile(t, 10)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"inspect", path}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})

	var res map[string]any
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("expected JSON output via env var: %v; stdout=%q", err, stdout)
	}
	if res["lines"] != float64(10) {
		t.Fatalf("unexpected result: %v", res)
	}
}

func TestExecute_NoInputAliasSkipsConfirm(t *testing.T) {
	withTestConfig(t)
	path := writeTestFile(t, 50)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"truncate", path, "--lines", "30", "--no-input"}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})

	want := fmt.Sprintf("Truncated %s to 31 lines.\n", path)
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestExecute_VersionFlag(t *testing.T) {
	withTestConfig(t)

	stdout := captureStdout(t, func() {
		if err := Execute([]string{"--version"}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})

	if !strings.Contains(stdout, "layertrim version") {
		t.Fatalf("unexpected version output: %q", stdout)
	}
}

func TestExecute_UnknownCommandFails(t *testing.T) {
	withTestConfig(t)

	err := Execute([]string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
