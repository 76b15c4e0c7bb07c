package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cerrors "github.com/slickdexic/layertrim/internal/errors"
	"github.com/slickdexic/layertrim/internal/logging"
	"github.com/slickdexic/layertrim/internal/outfmt"
	"github.com/slickdexic/layertrim/internal/ui"
	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color          string
	Output         string
	Debug          bool
	Query          string
	Yes            bool
	NoInput        bool
	NonInteractive bool
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		reportError(app.Flags.Output == "json", err)
		return err
	}
	return nil
}

// reportError writes the failure to stderr: a single structured
// document in JSON mode so scripted callers can parse it, prose
// otherwise. Stdout stays clean either way.
func reportError(jsonMode bool, err error) {
	if jsonMode {
		doc := map[string]any{"message": err.Error()}
		if cerrors.ContainsSuggestion(err) {
			doc["suggestion"] = cerrors.GetSuggestion(err)
		}
		_ = outfmt.WriteJSON(os.Stderr, map[string]any{"error": doc})
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	if cerrors.ContainsSuggestion(err) {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
	}
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "layertrim",
		Short:         "Cut overgrown source files back to a known-good prefix",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: false,
		},
		Example: strings.TrimSpace(`
  # Repair the default target (asks before writing)
  layertrim truncate

  # Trim an arbitrary file after line 200
  layertrim truncate ./resources/ext.layers.editor/LayerPanel.js --lines 200

  # Preview without touching the file
  layertrim truncate --dry-run

  # Where does a file currently end?
  layertrim inspect ./resources/ext.layers.editor/CanvasManager.js --tail 10

  # Find files that grew past the threshold
  layertrim scan ./resources --ext .js

  # Manage named targets
  layertrim targets add editor ./resources/ext.layers.editor/CanvasManager.js --lines 3789

  # JSON output for scripting
  layertrim --output=json inspect | jq .
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The UI goes in first so later setup can already warn.
			u := ui.New(app.Flags.Color)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			mode := outfmt.Text
			if app.Flags.Output == "json" {
				mode = outfmt.JSON
			}
			ctx = context.WithValue(ctx, outputModeKey, mode)
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			// Both hidden aliases collapse into --yes.
			if app.Flags.NoInput || app.Flags.NonInteractive {
				app.Flags.Yes = true
			}

			logger := logging.Setup(app.Flags.Debug)
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().BoolVarP(&app.Flags.Yes, "yes", "y", false, "Skip confirmation prompts (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NoInput, "no-input", false, "Alias for --yes (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NonInteractive, "non-interactive", false, "Alias for --yes (non-interactive)")
	_ = root.PersistentFlags().MarkHidden("no-input")
	_ = root.PersistentFlags().MarkHidden("non-interactive")

	root.AddCommand(newTruncateCmd(app))
	root.AddCommand(newInspectCmd(app))
	root.AddCommand(newScanCmd(app))
	root.AddCommand(newTargetsCmd(app))
	root.AddCommand(newUpdateCmd(app))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
