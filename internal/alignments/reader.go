// internal/alignments/reader.go
package alignments

import (
	"errors"
	"fmt"
	"io"

	"dmndcov/internal/coverage"
)

var (
	// ErrMalformed marks an alignment record that cannot be parsed.
	ErrMalformed = errors.New("malformed alignment record")
	// ErrUnknownSequence marks a hit whose target is not in the length table.
	ErrUnknownSequence = errors.New("unknown sequence")
)

// Supported input formats.
const (
	FormatTab = "tab"
	FormatSAM = "sam"
	FormatBAM = "bam"
)

// Reader yields one hit per Read and io.EOF when the stream is exhausted.
// Where describes the position of the last record read, for diagnostics.
type Reader interface {
	Read() (coverage.Hit, error)
	Where() string
}

// NewReader picks the record reader for format. BAM expects the raw
// (still BGZF compressed) stream; tab and sam expect decoded text.
func NewReader(format string, r io.Reader, name string) (Reader, error) {
	switch format {
	case FormatTab, "":
		return NewTabularReader(r, name), nil
	case FormatSAM, FormatBAM:
		newReader := NewSAMReader
		if format == FormatBAM {
			newReader = NewBAMReader
		}
		sr, err := newReader(r, name)
		if err != nil {
			return nil, err
		}
		return sr, nil
	default:
		return nil, fmt.Errorf("unknown alignment format %q", format)
	}
}
