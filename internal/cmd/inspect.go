package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/format"
	"github.com/slickdexic/layertrim/internal/outfmt"
	"github.com/slickdexic/layertrim/internal/truncate"
)

func newInspectCmd(app *App) *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "inspect [target]",
		Short: "Show size, line count and closing state of a target",
		Args:  cobra.MaximumNArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			opts, err := app.ResolveTarget(arg)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(opts.Path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", opts.Path, err)
			}

			lines := truncate.CountLines(data)
			closed := truncate.HasClosing(data, opts.Closing)
			tailLines := truncate.TailLines(data, tail)

			// What a truncate run would report for this file.
			wouldKeep := lines
			if wouldKeep > opts.Retain {
				wouldKeep = opts.Retain
			}
			wouldWrite := wouldKeep + 1

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"path":       opts.Path,
					"size":       len(data),
					"lines":      lines,
					"retain":     opts.Retain,
					"hasClosing": closed,
					"wouldKeep":  wouldKeep,
					"wouldWrite": wouldWrite,
					"tail":       tailLines,
				})
			}

			w := outfmt.NewTabWriter()
			fmt.Fprintf(w, "Path:\t%s\n", outfmt.SanitizeTab(opts.Path))
			fmt.Fprintf(w, "Size:\t%s\n", format.FormatBytes(int64(len(data))))
			fmt.Fprintf(w, "Lines:\t%d\n", lines)
			fmt.Fprintf(w, "Retain:\t%d\n", opts.Retain)
			fmt.Fprintf(w, "Closing:\t%v\n", closed)
			fmt.Fprintf(w, "Would keep:\t%d\n", wouldKeep)
			fmt.Fprintf(w, "Would write:\t%d\n", wouldWrite)
			if err := w.Flush(); err != nil {
				return err
			}

			if len(tailLines) > 0 {
				fmt.Println()
				start := lines - len(tailLines) + 1
				for i, line := range tailLines {
					fmt.Printf("%6d  %s\n", start+i, line)
				}
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&tail, "tail", 5, "Number of final lines to print")

	return cmd
}
