// Package ui prints status messages to stderr, in color when the
// terminal supports it. NO_COLOR and --color=never both disable color.
package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

type UI struct {
	out   *termenv.Output
	color bool
}

type contextKey struct{}

// New creates a UI for the given color mode: "never", "always" or
// "auto". Auto enables color only when stderr looks like a capable
// terminal, and NO_COLOR wins over everything.
func New(colorMode string) *UI {
	out := termenv.NewOutput(os.Stderr)

	var color bool
	switch colorMode {
	case "never":
		color = false
	case "always":
		color = true
	default:
		color = out.ColorProfile() != termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}

	return &UI{out: out, color: color}
}

// print writes msg to stderr, tinted with the ANSI color when enabled.
func (u *UI) print(msg, ansiColor string) {
	if u.color && ansiColor != "" {
		fmt.Fprintln(os.Stderr, u.out.String(msg).Foreground(u.out.Color(ansiColor)))
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Success prints a green status message.
func (u *UI) Success(msg string) { u.print(msg, "2") }

// Error prints a red status message.
func (u *UI) Error(msg string) { u.print(msg, "1") }

// Warning prints a yellow status message.
func (u *UI) Warning(msg string) { u.print(msg, "3") }

// Info prints a plain status message.
func (u *UI) Info(msg string) { u.print(msg, "") }

// WithUI stores the UI in the context.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext retrieves the UI from the context, falling back to a
// fresh auto-mode UI.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return New("auto")
}
