// Package filter evaluates jq expressions against JSON output.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Apply runs a jq expression over data. Data must use plain JSON types
// (maps, slices, strings, numbers), which is what gojq accepts.
func Apply(data any, expression string) (any, error) {
	if expression == "" {
		return data, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	var results []any
	iter := query.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		results = append(results, v)
	}

	// A single result comes back unwrapped, several as an array.
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

// ApplyToJSON runs an expression over encoded JSON and re-encodes the
// result with the indentation the CLI uses everywhere else.
func ApplyToJSON(jsonData []byte, expression string) ([]byte, error) {
	if expression == "" {
		return jsonData, nil
	}

	var data any
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := Apply(data, expression)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(result, "", "  ")
}
