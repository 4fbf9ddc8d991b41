// internal/alignments/tabular.go
package alignments

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dmndcov/internal/coverage"
)

// Column layout of DIAMOND --outfmt 6 as produced by the upstream pipeline:
// qseqid sseqid pident qstart qend sstart send evalue bitscore qlen slen [cigar]
const (
	colTarget  = 1
	colSStart  = 5
	colSEnd    = 6
	minColumns = 7
)

// TabularReader parses DIAMOND tabular records.
type TabularReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

func NewTabularReader(r io.Reader, name string) *TabularReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return &TabularReader{sc: sc, name: name}
}

func (t *TabularReader) Where() string { return fmt.Sprintf("%s:%d", t.name, t.line) }

func (t *TabularReader) Read() (coverage.Hit, error) {
	if t.sc.Scan() {
		t.line++
		return t.parse(strings.TrimRight(t.sc.Text(), "\r"))
	}
	if err := t.sc.Err(); err != nil {
		return coverage.Hit{}, fmt.Errorf("%s: %w", t.name, err)
	}
	return coverage.Hit{}, io.EOF
}

func (t *TabularReader) parse(line string) (coverage.Hit, error) {
	f := strings.SplitN(line, "\t", minColumns+1)
	if len(f) < minColumns {
		return coverage.Hit{}, fmt.Errorf("%s: %w: %d columns, need at least %d", t.Where(), ErrMalformed, len(f), minColumns)
	}
	start, err := strconv.ParseUint(f[colSStart], 10, 64)
	if err != nil {
		return coverage.Hit{}, fmt.Errorf("%s: %w: bad start %q", t.Where(), ErrMalformed, f[colSStart])
	}
	end, err := strconv.ParseUint(f[colSEnd], 10, 64)
	if err != nil {
		return coverage.Hit{}, fmt.Errorf("%s: %w: bad end %q", t.Where(), ErrMalformed, f[colSEnd])
	}
	return coverage.Hit{Target: f[colTarget], Start: start, End: end}, nil
}
