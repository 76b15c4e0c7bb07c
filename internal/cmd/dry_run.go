package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printDryRun reports what a command would have done. Text mode prints
// the message to stdout; JSON mode emits a single document with
// dryRun set alongside the payload.
func printDryRun(cmd *cobra.Command, message string, payload map[string]any) error {
	if isJSON(cmd.Context()) {
		out := map[string]any{"dryRun": true}
		for k, v := range payload {
			out[k] = v
		}
		return printJSON(cmd, out)
	}

	fmt.Println(message)
	return nil
}
