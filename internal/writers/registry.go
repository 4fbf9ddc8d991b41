// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"dmndcov/internal/coverage"
)

// Options tune report rendering.
type Options struct {
	Header bool // TSV header row
}

// ReportFunc renders a whole table to w.
type ReportFunc func(w io.Writer, t *coverage.Table, o Options) error

type format struct {
	ext   string
	write ReportFunc
}

// Report registry (format → handler). Formats register from init() blocks.
var reports = map[string]format{}

// Register adds or replaces (last wins) a report format.
func Register(name, ext string, fn ReportFunc) { reports[name] = format{ext: ext, write: fn} }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reports))
	for name := range reports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Extension returns the file suffix (with dot) used for format.
func Extension(name string) (string, error) {
	f, ok := reports[name]
	if !ok {
		return "", fmt.Errorf("unknown report format %q (no writer registered)", name)
	}
	return f.ext, nil
}

// Write dispatches to the writer registered for name.
func Write(name string, w io.Writer, t *coverage.Table, o Options) error {
	f, ok := reports[name]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", name)
	}
	return f.write(w, t, o)
}
