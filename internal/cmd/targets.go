package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/config"
	"github.com/slickdexic/layertrim/internal/format"
	"github.com/slickdexic/layertrim/internal/logging"
	"github.com/slickdexic/layertrim/internal/outfmt"
	"github.com/slickdexic/layertrim/internal/truncate"
	"github.com/slickdexic/layertrim/internal/ui"
	"github.com/slickdexic/layertrim/internal/validation"
)

func newTargetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage named trim targets",
		Long:  `Store per-file truncation profiles so a repair is one short command.`,
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			// Desire path: `layertrim targets` lists the configured targets.
			return runTargetsList(cmd, app)
		}),
	}

	cmd.AddCommand(newTargetsListCmd(app))
	cmd.AddCommand(newTargetsShowCmd(app))
	cmd.AddCommand(newTargetsAddCmd(app))
	cmd.AddCommand(newTargetsRemoveCmd(app))
	cmd.AddCommand(newTargetsSetDefaultCmd(app))

	return cmd
}

type targetRecord struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Retain  int    `json:"retain"`
	Closing string `json:"closing"`
	Suffix  string `json:"suffix"`
	Default bool   `json:"default"`
}

func runTargetsList(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	names := cfg.Names()
	if len(names) == 0 {
		if app.IsJSON(cmd.Context()) {
			return app.PrintJSON(cmd, []targetRecord{})
		}
		printNoResults("No targets configured. Run: layertrim targets add <name> <path>")
		return nil
	}

	if app.IsJSON(cmd.Context()) {
		records := make([]targetRecord, 0, len(names))
		for _, name := range names {
			t := cfg.Targets[name]
			records = append(records, targetRecord{
				Name:    name,
				Path:    t.Path,
				Retain:  t.Retain,
				Closing: t.Closing,
				Suffix:  t.Suffix,
				Default: name == cfg.DefaultTarget,
			})
		}
		return app.PrintJSON(cmd, records)
	}

	w := outfmt.NewTabWriter()
	fmt.Fprintln(w, " \tNAME\tRETAIN\tCLOSING\tPATH")
	for _, name := range names {
		t := cfg.Targets[name]
		marker := " "
		if name == cfg.DefaultTarget {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			marker,
			name,
			t.Retain,
			format.Snippet(t.Closing, 20),
			outfmt.SanitizeTab(t.Path))
	}
	return w.Flush()
}

func newTargetsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured targets",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			return runTargetsList(cmd, app)
		}),
	}
}

func newTargetsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one target in full",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			name := strings.TrimSpace(args[0])
			target, err := cfg.Resolve(name)
			if err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, targetRecord{
					Name:    name,
					Path:    target.Path,
					Retain:  target.Retain,
					Closing: target.Closing,
					Suffix:  target.Suffix,
					Default: name == cfg.DefaultTarget,
				})
			}

			w := outfmt.NewTabWriter()
			fmt.Fprintf(w, "Name:\t%s\n", name)
			fmt.Fprintf(w, "Path:\t%s\n", outfmt.SanitizeTab(target.Path))
			fmt.Fprintf(w, "Retain:\t%d\n", target.Retain)
			fmt.Fprintf(w, "Closing:\t%s\n", format.Snippet(target.Closing, 40))
			fmt.Fprintf(w, "Suffix:\t%s\n", target.Suffix)
			fmt.Fprintf(w, "Default:\t%v\n", name == cfg.DefaultTarget)
			return w.Flush()
		}),
	}
}

func newTargetsAddCmd(app *App) *cobra.Command {
	var (
		lines   int
		closing string
		suffix  string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Add a named target",
		Args:  cobra.ExactArgs(2),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			name := strings.TrimSpace(args[0])
			path := strings.TrimSpace(args[1])

			if err := validation.TargetName(name); err != nil {
				return err
			}
			if err := validation.Required("path", path); err != nil {
				return err
			}
			if err := validation.PositiveInt("lines", lines); err != nil {
				return err
			}
			if err := validation.Suffix(suffix); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, exists := cfg.Targets[name]; exists {
				return fmt.Errorf("target already exists: %s", name)
			}

			if cfg.Targets == nil {
				cfg.Targets = map[string]config.Target{}
			}
			cfg.Targets[name] = config.Target{
				Path:    path,
				Retain:  lines,
				Closing: closing,
				Suffix:  suffix,
			}
			// First target becomes the default
			if cfg.DefaultTarget == "" {
				cfg.DefaultTarget = name
			}

			if err := config.Save(cfg); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("added target", "name", name, "path", path)

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"added":   true,
					"name":    name,
					"default": cfg.DefaultTarget == name,
				})
			}

			ui.FromContext(cmd.Context()).Success(fmt.Sprintf("Added target %s", name))
			return nil
		}),
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", truncate.DefaultRetain, "Number of leading lines to keep")
	cmd.Flags().StringVar(&closing, "closing", truncate.DefaultClosing, "Snippet appended after the kept lines")
	cmd.Flags().StringVar(&suffix, "suffix", truncate.DefaultSuffix, "Suffix for the temporary file")

	return cmd
}

func newTargetsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a configured target",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			name := strings.TrimSpace(args[0])

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, exists := cfg.Targets[name]; !exists {
				return fmt.Errorf("%w: %s", config.ErrTargetNotFound, name)
			}

			delete(cfg.Targets, name)
			if cfg.DefaultTarget == name {
				cfg.DefaultTarget = ""
			}

			if err := config.Save(cfg); err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"deleted": true,
					"name":    name,
				})
			}

			ui.FromContext(cmd.Context()).Success(fmt.Sprintf("Removed target %s", name))
			return nil
		}),
	}
}

func newTargetsSetDefaultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <name>",
		Short: "Set the target used when no argument is given",
		Args:  cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			name := strings.TrimSpace(args[0])

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, exists := cfg.Targets[name]; !exists {
				return fmt.Errorf("%w: %s", config.ErrTargetNotFound, name)
			}

			cfg.DefaultTarget = name
			if err := config.Save(cfg); err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"default": name,
				})
			}

			ui.FromContext(cmd.Context()).Success(fmt.Sprintf("Default target is now %s", name))
			return nil
		}),
	}
}
