package inputs

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

const payload = "q1\tseqA\t99.0\t1\t10\t5\t20\t1e-5\t50\t10\t100\n"

func readAll(t *testing.T, path string, stdin io.Reader) string {
	t.Helper()
	rc, err := Open(path, stdin)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestOpenPlain(t *testing.T) {
	fn := writeFile(t, "hits.tsv", []byte(payload))
	if got := readAll(t, fn, nil); got != payload {
		t.Fatalf("got %q", got)
	}
}

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(payload))
	_ = zw.Close()

	fn := writeFile(t, "hits.tsv.gz", buf.Bytes())
	if got := readAll(t, fn, nil); got != payload {
		t.Fatalf("got %q", got)
	}
}

func TestOpenBGZF(t *testing.T) {
	var buf bytes.Buffer
	bw := bgzf.NewWriter(&buf, 1)
	if _, err := bw.Write([]byte(payload)); err != nil {
		t.Fatal(err)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	if !isBGZF(buf.Bytes()) {
		t.Fatalf("bgzf writer output not sniffed as BGZF")
	}

	fn := writeFile(t, "hits.tsv.bgz", buf.Bytes())
	if got := readAll(t, fn, nil); got != payload {
		t.Fatalf("got %q", got)
	}
}

func TestOpenZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = zw.Write([]byte(payload))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	fn := writeFile(t, "hits.diamondn.zst", buf.Bytes())
	if got := readAll(t, fn, nil); got != payload {
		t.Fatalf("got %q", got)
	}
	if got := readAll(t, Stdin, bytes.NewReader(buf.Bytes())); got != payload {
		t.Fatalf("stdin: got %q", got)
	}
}

func TestOpenSnappyFromStdin(t *testing.T) {
	var buf bytes.Buffer
	sw := snappy.NewBufferedWriter(&buf)
	_, _ = sw.Write([]byte(payload))
	_ = sw.Close()

	if got := readAll(t, Stdin, &buf); got != payload {
		t.Fatalf("got %q", got)
	}
}

func TestOpenStdinPlainAndEmpty(t *testing.T) {
	if got := readAll(t, "-", strings.NewReader(payload)); got != payload {
		t.Fatalf("got %q", got)
	}
	if got := readAll(t, "-", strings.NewReader("")); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.tsv"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOpenRawKeepsBytes(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(payload))
	_ = zw.Close()
	want := buf.Bytes()

	fn := writeFile(t, "raw.gz", want)
	rc, err := OpenRaw(fn, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if !bytes.Equal(got, want) {
		t.Fatalf("OpenRaw altered the stream")
	}
}
