// internal/writers/tsv.go
package writers

import (
	"bufio"
	"io"
	"strconv"

	"dmndcov/internal/coverage"
)

// TSVHeaderPrefix precedes the bin label columns in the header row.
const TSVHeaderPrefix = "sequence_name\tfound\tsequence_length"

func init() { Register("tsv", ".tsv", WriteTSV) }

// FormatLabel renders a bin label as the shortest decimal that round-trips,
// never in exponent form (0.125, 0.05, 0.3333333333333333).
func FormatLabel(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// WriteTSV writes the header (when o.Header) and one row per sequence in
// table order: name, found (1/0), length, then the bin counts.
func WriteTSV(w io.Writer, t *coverage.Table, o Options) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if o.Header {
		line := []byte(TSVHeaderPrefix)
		for _, l := range coverage.Labels(t.Bins()) {
			line = append(line, '\t')
			line = append(line, FormatLabel(l)...)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	var line []byte
	for _, s := range t.Sequences() {
		line = append(line[:0], s.Name...)
		if s.Found {
			line = append(line, "\t1\t"...)
		} else {
			line = append(line, "\t0\t"...)
		}
		line = strconv.AppendUint(line, s.Length, 10)
		for _, b := range s.Bins {
			line = append(line, '\t')
			line = strconv.AppendUint(line, b.Count, 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
