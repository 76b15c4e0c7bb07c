package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/config"
	cerrors "github.com/slickdexic/layertrim/internal/errors"
	"github.com/slickdexic/layertrim/internal/outfmt"
	"github.com/slickdexic/layertrim/internal/truncate"
	"github.com/slickdexic/layertrim/internal/ui"
)

type appKey struct{}

type App struct {
	Flags  *rootFlags
	UI     *ui.UI
	Logger Logger
}

// Logger is the minimal interface we need from slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
}

func NewApp() *App {
	flags := rootFlags{
		Color:  envOr("LAYERTRIM_COLOR", "auto"),
		Output: envOr("LAYERTRIM_OUTPUT", "text"),
	}
	return &App{Flags: &flags}
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = &App{Flags: &rootFlags{}}
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

func isJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func printJSON(cmd *cobra.Command, v any) error {
	query, _ := cmd.Context().Value(queryKey).(string)
	return outfmt.PrintJSONFiltered(v, query)
}

func (a *App) IsJSON(ctx context.Context) bool {
	return isJSON(ctx)
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.PrintJSONFiltered(v, a.Query(cmd.Context()))
}

func (a *App) Confirm(cmd *cobra.Command, skip bool, prompt string, accepted ...string) (bool, error) {
	if skip || a.IsJSON(cmd.Context()) || (a.Flags != nil && a.Flags.Yes) {
		return true, nil
	}
	return confirmPrompt(os.Stderr, prompt, accepted...)
}

// ResolveTarget maps a command line argument to truncation options.
// A configured target name wins; anything else is treated as a literal
// path with the stock defaults. An empty argument resolves the
// configured default target.
func (a *App) ResolveTarget(arg string) (truncate.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return truncate.Options{}, err
	}

	if arg == "" {
		target, err := cfg.Resolve("")
		if err != nil {
			return truncate.Options{}, err
		}
		return optionsFromTarget(target), nil
	}

	if target, err := cfg.Resolve(arg); err == nil {
		return optionsFromTarget(target), nil
	}

	return truncate.Options{
		Path:    arg,
		Retain:  truncate.DefaultRetain,
		Closing: truncate.DefaultClosing,
		Suffix:  truncate.DefaultSuffix,
	}, nil
}

func optionsFromTarget(t config.Target) truncate.Options {
	return truncate.Options{
		Path:    t.Path,
		Retain:  t.Retain,
		Closing: t.Closing,
		Suffix:  t.Suffix,
	}
}

// Suggest wraps an error with a user-facing suggestion.
func Suggest(err error, suggestion string) error {
	return cerrors.WithSuggestion(err, suggestion)
}
