// Package scan walks a directory tree looking for source files that
// grew past a line threshold and are candidates for truncation.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/slickdexic/layertrim/internal/truncate"
)

// Options controls a directory scan.
type Options struct {
	// Root is the directory to walk.
	Root string
	// Exts restricts the scan to files with one of these extensions.
	// Extensions are matched case-insensitively; a missing leading dot
	// is tolerated. Empty means every regular file is considered.
	Exts []string
	// MinLines reports only files with at least this many physical
	// lines. Zero or negative reports every considered file.
	MinLines int
	// Closing, when non-empty, is checked against each file's tail so
	// already-repaired files can be told apart.
	Closing string
}

// Finding describes one file that matched the scan criteria.
type Finding struct {
	Path       string `json:"path"`
	Lines      int    `json:"lines"`
	Size       int64  `json:"size"`
	HasClosing bool   `json:"hasClosing"`
}

// Run walks opts.Root and returns matching files sorted by path.
// Hidden directories (dot-prefixed) are skipped entirely.
func Run(opts Options) ([]Finding, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("scan root is required")
	}
	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", opts.Root)
	}

	exts := normalizeExts(opts.Exts)

	var findings []Finding
	err = filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != opts.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !matchesExt(d.Name(), exts) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		lines := truncate.CountLines(data)
		if opts.MinLines > 0 && lines < opts.MinLines {
			return nil
		}

		findings = append(findings, Finding{
			Path:       path,
			Lines:      lines,
			Size:       int64(len(data)),
			HasClosing: opts.Closing != "" && truncate.HasClosing(data, opts.Closing),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", opts.Root, err)
	}

	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Path < findings[j].Path
	})
	return findings, nil
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}

func matchesExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	got := strings.ToLower(filepath.Ext(name))
	for _, ext := range exts {
		if got == ext {
			return true
		}
	}
	return false
}
