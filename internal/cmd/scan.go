package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/format"
	"github.com/slickdexic/layertrim/internal/outfmt"
	"github.com/slickdexic/layertrim/internal/scan"
	"github.com/slickdexic/layertrim/internal/truncate"
)

func newScanCmd(app *App) *cobra.Command {
	var (
		exts     []string
		minLines int
	)

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Find files that grew past a line threshold",
		Long: `Walk a directory tree and report files with at least the threshold
number of lines, so truncation candidates can be spotted before they
are committed. Hidden directories are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			findings, err := scan.Run(scan.Options{
				Root:     args[0],
				Exts:     exts,
				MinLines: minLines,
				Closing:  truncate.DefaultClosing,
			})
			if err != nil {
				return err
			}

			if app.IsJSON(cmd.Context()) {
				if findings == nil {
					findings = []scan.Finding{}
				}
				return app.PrintJSON(cmd, findings)
			}

			if len(findings) == 0 {
				printNoResults("No files with at least %d lines under %s", minLines, args[0])
				return nil
			}

			w := outfmt.NewTabWriter()
			fmt.Fprintln(w, "PATH\tLINES\tSIZE\tCLOSING")
			for _, f := range findings {
				fmt.Fprintf(w, "%s\t%d\t%s\t%v\n",
					outfmt.SanitizeTab(format.TruncatePath(f.Path, 60)),
					f.Lines,
					format.FormatBytes(f.Size),
					f.HasClosing)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().StringSliceVar(&exts, "ext", []string{".js"}, "File extensions to consider")
	// Default threshold is the height of a freshly repaired stock
	// target: the retained lines plus the two closing lines.
	cmd.Flags().IntVar(&minLines, "min-lines", truncate.DefaultRetain+2, "Minimum line count to report")

	return cmd
}
