// Package outfmt writes command output in text or JSON form.
package outfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/slickdexic/layertrim/internal/filter"
)

type Mode int

const (
	Text Mode = iota
	JSON
)

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintJSON prints v as JSON to stdout.
func PrintJSON(v any) error {
	return WriteJSON(os.Stdout, v)
}

// WriteJSONFiltered writes v as indented JSON to w, applying a JQ filter
// expression. If query is empty, behaves like WriteJSON. The value is
// round-tripped through encoding/json first, since the filter engine
// only accepts plain JSON types, not structs.
func WriteJSONFiltered(w io.Writer, v any, query string) error {
	if query == "" {
		return WriteJSON(w, v)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	out, err := filter.ApplyToJSON(data, query)
	if err != nil {
		return err
	}

	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// PrintJSONFiltered prints v as JSON to stdout, applying a JQ filter expression.
// If query is empty, behaves like PrintJSON.
func PrintJSONFiltered(v any, query string) error {
	return WriteJSONFiltered(os.Stdout, v, query)
}

// Errorf prints to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
