package cmd

import (
	"os"
	"testing"
)

func withStdin(t *testing.T, input string) {
	t.Helper()

	stdin := os.Stdin
	t.Cleanup(func() { os.Stdin = stdin })

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r

	_, _ = w.WriteString(input)
	_ = w.Close()
}

func TestConfirmPrompt_Accepted(t *testing.T) {
	withStdin(t, "YES\n")

	confirmed, err := confirmPrompt(os.Stderr, "Truncate? ", "y", "yes")
	if err != nil {
		t.Fatalf("confirmPrompt error: %v", err)
	}
	if !confirmed {
		t.Fatal("confirmPrompt = false, want true")
	}
}

func TestConfirmPrompt_Denied(t *testing.T) {
	withStdin(t, "no\n")

	confirmed, err := confirmPrompt(os.Stderr, "Truncate? ", "y", "yes")
	if err != nil {
		t.Fatalf("confirmPrompt error: %v", err)
	}
	if confirmed {
		t.Fatal("confirmPrompt = true, want false")
	}
}

func TestConfirmPrompt_EOF(t *testing.T) {
	withStdin(t, "")

	if _, err := confirmPrompt(os.Stderr, "Truncate? ", "y", "yes"); err == nil {
		t.Fatal("confirmPrompt error = nil, want error")
	}
}
