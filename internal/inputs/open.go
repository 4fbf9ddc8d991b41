// internal/inputs/open.go
package inputs

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Stdin is the source token that selects standard input.
const Stdin = "-"

const peekLen = 16

var (
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenRaw opens path, or stdin when path is "-", without any decoding.
// A nil stdin means os.Stdin.
func OpenRaw(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return fh, nil
}

// Open is OpenRaw plus transparent decompression. The codec is picked by
// sniffing the first bytes, so it works on pipes as well as files:
// BGZF (bgzip), plain gzip, zstd and snappy framed streams are recognized.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	src, err := OpenRaw(path, stdin)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(src, 64<<10)
	// Short inputs return fewer bytes and an error; the bytes are still usable.
	sig, _ := br.Peek(peekLen)

	switch {
	case isBGZF(sig):
		bz, err := bgzf.NewReader(br, 1)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: bz, closers: []io.Closer{bz, src}}, nil
	case isGzip(sig):
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), src}}, nil
	case bytes.HasPrefix(sig, snappyMagic):
		return &multiReadCloser{Reader: snappy.NewReader(br), closers: []io.Closer{src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}

func isGzip(sig []byte) bool {
	return len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b
}

// isBGZF checks for the gzip FEXTRA flag carrying the "BC" subfield.
func isBGZF(sig []byte) bool {
	return len(sig) >= 14 && isGzip(sig) && sig[3]&0x04 != 0 && sig[12] == 'B' && sig[13] == 'C'
}
