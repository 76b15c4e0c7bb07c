package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slickdexic/layertrim/internal/ui"
	"github.com/slickdexic/layertrim/internal/update"
)

func newUpdateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check whether a newer release is available",
		Args:  cobra.NoArgs,
		RunE: runE(app, func(cmd *cobra.Command, _ []string, app *App) error {
			if Version == "dev" || Version == "" {
				return fmt.Errorf("update check is not available for dev builds")
			}

			// A failed check is not an error exit. The check talks to the
			// network and must never break scripted runs.
			result := update.CheckForUpdate(cmd.Context(), Version)
			if result == nil {
				ui.FromContext(cmd.Context()).Warning("Could not check for updates.")
				return nil
			}

			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]any{
					"currentVersion":  result.CurrentVersion,
					"latestVersion":   result.LatestVersion,
					"updateAvailable": result.UpdateAvailable,
					"updateUrl":       result.UpdateURL,
				})
			}

			if result.UpdateAvailable {
				fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
				fmt.Printf("Download: %s\n", result.UpdateURL)
			} else {
				fmt.Printf("layertrim %s is up to date.\n", result.CurrentVersion)
			}
			return nil
		}),
	}
}
