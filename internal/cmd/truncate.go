package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/logging"
	"github.com/slickdexic/layertrim/internal/truncate"
	"github.com/slickdexic/layertrim/internal/ui"
	"github.com/slickdexic/layertrim/internal/validation"
)

func newTruncateCmd(app *App) *cobra.Command {
	var (
		lines   int
		closing string
		suffix  string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:     "truncate [target]",
		Aliases: []string{"trim"},
		Short:   "Cut a file after a line count and append the closing snippet",
		Long: `Keep the first N lines of a file, append the closing snippet, and
replace the file atomically via a temporary file next to it.

The target may be a configured target name or a literal path. With no
argument the configured default target is used. The reported count is
the number of written elements: the kept lines plus the closing
snippet, which itself may span several physical lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			logger := logging.FromContext(cmd.Context())

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			opts, err := app.ResolveTarget(arg)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("lines") {
				opts.Retain = lines
			}
			if cmd.Flags().Changed("closing") {
				opts.Closing = closing
			}
			if cmd.Flags().Changed("suffix") {
				if err := validation.Suffix(suffix); err != nil {
					return err
				}
				opts.Suffix = suffix
			}
			if err := validation.PositiveInt("lines", opts.Retain); err != nil {
				return err
			}

			plan, err := truncate.Plan(opts)
			if err != nil {
				return err
			}
			logger.Debug("planned truncation",
				"path", plan.Path,
				"linesRead", plan.LinesRead,
				"linesKept", plan.LinesKept,
				"truncated", plan.Truncated)

			if plan.AlreadyClosed {
				ui.FromContext(cmd.Context()).Warning(
					fmt.Sprintf("%s already ends with the closing snippet; it would be appended again", opts.Path))
			}

			if dryRun {
				return printDryRun(cmd,
					fmt.Sprintf("Would truncate %s to %d lines.", plan.Path, plan.LinesWritten),
					map[string]any{"plan": plan})
			}

			confirmed, err := app.Confirm(cmd, false,
				fmt.Sprintf("Truncate %s after line %d? [y/N] ", opts.Path, opts.Retain), "y", "yes")
			if err != nil {
				return err
			}
			if !confirmed {
				printCancelled()
				return nil
			}

			res, err := truncate.Run(opts)
			if err != nil {
				return err
			}
			logger.Debug("replaced file",
				"runId", res.RunID,
				"tempPath", res.TempPath,
				"bytesWritten", res.BytesWritten)

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, res)
			}

			fmt.Printf("Truncated %s to %d lines.\n", res.Path, res.LinesWritten)
			return nil
		}),
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", truncate.DefaultRetain, "Number of leading lines to keep")
	cmd.Flags().StringVar(&closing, "closing", truncate.DefaultClosing, "Snippet appended after the kept lines")
	cmd.Flags().StringVar(&suffix, "suffix", truncate.DefaultSuffix, "Suffix for the temporary file written next to the target")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the plan without writing anything")

	return cmd
}
