package cmd

import (
	"github.com/slickdexic/layertrim/internal/outfmt"
)

// printNoResults reports an empty result set on stderr, keeping
// stdout clean for data.
func printNoResults(format string, args ...any) {
	outfmt.Errorf(format, args...)
}

func printCancelled() {
	outfmt.Errorf("Cancelled")
}
