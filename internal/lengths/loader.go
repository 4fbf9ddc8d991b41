// internal/lengths/loader.go
package lengths

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dmndcov/internal/coverage"
	"dmndcov/internal/inputs"
)

// ErrMalformed marks a length table line that cannot be used.
var ErrMalformed = errors.New("malformed length record")

// LoadTSV reads a tab-separated file with
// name length
// and builds a table with bins bins per sequence. Extra columns are
// ignored; an empty line is malformed. path may be "-" for stdin and may be
// gzip/BGZF/snappy compressed.
func LoadTSV(path string, stdin io.Reader, bins int) (*coverage.Table, error) {
	rc, err := inputs.Open(path, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc, path, bins)
}

// Read is LoadTSV over an already open stream; name is used in errors.
func Read(r io.Reader, name string, bins int) (*coverage.Table, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("number of bins must be > 0, got %d", bins)
	}
	t := coverage.NewTable(bins)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d: %w: want name<TAB>length", name, ln, ErrMalformed)
		}
		length, err := strconv.ParseUint(f[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: bad length %q", name, ln, ErrMalformed, f[1])
		}
		t.Put(f[0], length)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
