package outfmt

import (
	"os"
	"strings"
	"text/tabwriter"
)

// NewTabWriter returns a tabwriter bound to stdout with the column
// settings every table in the CLI uses.
func NewTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// SanitizeTab replaces tabs and line breaks in a cell with spaces.
// Either would break the tabwriter's column layout.
func SanitizeTab(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}
