// internal/alignments/sam.go
package alignments

import (
	"fmt"
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"dmndcov/internal/coverage"
)

// SAMReader turns mapped SAM/BAM records into hits with 1-based inclusive
// reference coordinates, the same convention as DIAMOND sstart/send.
// Unmapped records are skipped.
type SAMReader struct {
	read   func() (*sam.Record, error)
	closer io.Closer
	name   string
	n      int
}

func NewSAMReader(r io.Reader, name string) (*SAMReader, error) {
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: sam header: %w", name, err)
	}
	return &SAMReader{read: sr.Read, name: name}, nil
}

func NewBAMReader(r io.Reader, name string) (*SAMReader, error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: bam header: %w", name, err)
	}
	return &SAMReader{read: br.Read, closer: br, name: name}, nil
}

func (s *SAMReader) Where() string { return fmt.Sprintf("%s: record %d", s.name, s.n) }

func (s *SAMReader) Read() (coverage.Hit, error) {
	for {
		rec, err := s.read()
		if err == io.EOF {
			return coverage.Hit{}, io.EOF
		}
		s.n++
		if err != nil {
			return coverage.Hit{}, fmt.Errorf("%s: %w: %v", s.Where(), ErrMalformed, err)
		}
		if rec.Ref == nil || rec.Flags&sam.Unmapped != 0 {
			continue
		}
		start := uint64(rec.Pos + 1)
		end := start
		if e := rec.End(); e > rec.Pos {
			end = uint64(e)
		}
		return coverage.Hit{Target: rec.Ref.Name(), Start: start, End: end}, nil
	}
}

// Close releases the BAM decompressor; it is a no-op for SAM.
func (s *SAMReader) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
