// internal/writers/destination.go
package writers

import (
	"fmt"
	"io"
	"os"

	"dmndcov/internal/coverage"
)

// Stdout is the output prefix that selects standard output.
const Stdout = "-"

// ReportPath is the file a report in format is written to for prefix.
func ReportPath(prefix, format string) (string, error) {
	if prefix == Stdout {
		return Stdout, nil
	}
	ext, err := Extension(format)
	if err != nil {
		return "", err
	}
	return prefix + ext, nil
}

// WriteReport renders t to <prefix><ext>, or to stdout when prefix is "-",
// and returns the destination. A file that fails mid-write is removed so
// no partial report is left behind.
func WriteReport(prefix, format string, stdout io.Writer, t *coverage.Table, o Options) (string, error) {
	dst, err := ReportPath(prefix, format)
	if err != nil {
		return "", err
	}
	if dst == Stdout {
		if err := Write(format, stdout, t, o); err != nil && !IsBrokenPipe(err) {
			return dst, fmt.Errorf("write stdout: %w", err)
		}
		return dst, nil
	}

	fh, err := os.Create(dst)
	if err != nil {
		return dst, err
	}
	werr := Write(format, fh, t, o)
	cerr := fh.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(dst)
		return dst, fmt.Errorf("write %s: %w", dst, werr)
	}
	return dst, nil
}
