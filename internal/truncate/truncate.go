// Package truncate rewrites a text file as a fixed prefix of its lines
// followed by a closing snippet, replacing the original atomically.
package truncate

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Defaults carried over from the original CanvasManager.js repair.
const (
	DefaultRetain  = 3789
	DefaultClosing = "\n}() );\n"
	DefaultSuffix  = ".tmp"
)

// Options describes a single truncation run.
type Options struct {
	// Path is the file to rewrite.
	Path string
	// Retain is the number of leading lines to keep. A file with fewer
	// lines is kept whole; there is deliberately no minimum-length
	// check and no check that line Retain is a sensible boundary.
	Retain int
	// Closing is appended after the retained lines as a single
	// element. It may contain newlines and is written literally.
	Closing string
	// Suffix is appended to Path to form the temporary file path.
	// Empty means DefaultSuffix.
	Suffix string
}

// Result reports what a run read, kept, and wrote.
type Result struct {
	RunID     string `json:"runId"`
	Path      string `json:"path"`
	TempPath  string `json:"tempPath"`
	LinesRead int    `json:"linesRead"`
	LinesKept int    `json:"linesKept"`
	// LinesWritten counts the elements written: the retained lines
	// plus one for the closing snippet. A closing snippet containing
	// newlines makes the physical line count of the output higher.
	LinesWritten int   `json:"linesWritten"`
	BytesWritten int64 `json:"bytesWritten"`
	Truncated    bool  `json:"truncated"`
	// AlreadyClosed is set when the source already ended with the
	// closing snippet, so a run would append it a second time.
	AlreadyClosed bool `json:"alreadyClosed"`
}

// Run keeps the first opts.Retain lines of the file at opts.Path,
// appends opts.Closing, writes the result to Path+Suffix, and renames
// the temporary file over the original. The original is either left
// intact or fully replaced, never partially written. A run that fails
// after the write phase began may leave the temporary file behind; a
// later successful run overwrites and consumes it.
func Run(opts Options) (*Result, error) {
	res, content, err := plan(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(res.TempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(res.TempPath, opts.Path); err != nil {
		return nil, fmt.Errorf("failed to replace %s: %w", opts.Path, err)
	}

	return res, nil
}

// Plan computes the Result a Run would produce without writing
// anything. The source file is still read in full.
func Plan(opts Options) (*Result, error) {
	res, _, err := plan(opts)
	return res, err
}

func plan(opts Options) (*Result, []byte, error) {
	if opts.Path == "" {
		return nil, nil, fmt.Errorf("path is required")
	}
	if opts.Retain <= 0 {
		return nil, nil, fmt.Errorf("retain count must be positive")
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", opts.Path, err)
	}

	lines := SplitLines(data)
	kept := lines
	if len(lines) > opts.Retain {
		kept = lines[:opts.Retain]
	}

	var buf bytes.Buffer
	for _, line := range kept {
		buf.WriteString(line)
	}
	buf.WriteString(opts.Closing)

	res := &Result{
		RunID:         uuid.New().String(),
		Path:          opts.Path,
		TempPath:      opts.Path + suffix,
		LinesRead:     len(lines),
		LinesKept:     len(kept),
		LinesWritten:  len(kept) + 1,
		BytesWritten:  int64(buf.Len()),
		Truncated:     len(lines) > opts.Retain,
		AlreadyClosed: HasClosing(data, opts.Closing),
	}
	return res, buf.Bytes(), nil
}
