// internal/alignments/process.go
package alignments

import (
	"context"
	"fmt"
	"io"
	"sort"

	"dmndcov/internal/coverage"
)

type Options struct {
	// AllowUnknown skips hits on targets missing from the table instead of
	// failing. Skipped targets are reported in Stats.
	AllowUnknown bool
}

type Stats struct {
	Records int // hits read
	Applied int // hits that incremented at least one bin
	Skipped int // hits on unknown targets (AllowUnknown only)

	unknown map[string]int
}

// UnknownTargets returns the distinct skipped target names, sorted.
func (s Stats) UnknownTargets() []string {
	out := make([]string, 0, len(s.unknown))
	for name := range s.unknown {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Process drains rd into t. It stops at the first read error, at the first
// unknown target unless o.AllowUnknown is set, or when ctx is done.
func Process(ctx context.Context, rd Reader, t *coverage.Table, o Options) (Stats, error) {
	var st Stats
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		h, err := rd.Read()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		st.Records++

		seq, ok := t.Get(h.Target)
		if !ok {
			if !o.AllowUnknown {
				return st, fmt.Errorf("%s: %w %q", rd.Where(), ErrUnknownSequence, h.Target)
			}
			if st.unknown == nil {
				st.unknown = make(map[string]int)
			}
			st.unknown[h.Target]++
			st.Skipped++
			continue
		}
		h = h.Normalize()
		if seq.AddHit(h.Start, h.End) > 0 {
			st.Applied++
		}
	}
}
