// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"io"

	json "github.com/goccy/go-json"

	"dmndcov/internal/coverage"
	"dmndcov/pkg/api"
)

func init() { Register("jsonl", ".jsonl", WriteJSONL) }

// ToAPISequence converts a profile to the v1 wire type.
func ToAPISequence(s *coverage.Sequence, labels []float64) api.SequenceCoverageV1 {
	out := api.SequenceCoverageV1{
		SequenceName:   s.Name,
		Found:          s.Found,
		SequenceLength: s.Length,
		Bins:           make([]api.BinV1, len(s.Bins)),
	}
	for i, b := range s.Bins {
		out.Bins[i] = api.BinV1{Lower: b.Lower, Upper: b.Upper, Middle: b.Middle, Count: b.Count}
		if i < len(labels) {
			out.Bins[i].Label = labels[i]
		}
	}
	return out
}

// WriteJSONL writes one JSON object per sequence in table order.
// o.Header has no effect.
func WriteJSONL(w io.Writer, t *coverage.Table, _ Options) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	labels := coverage.Labels(t.Bins())
	for _, s := range t.Sequences() {
		if err := enc.Encode(ToAPISequence(s, labels)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
