package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestUnknownReportFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, sampleTable(), Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want 'unknown report format' error, got: %v", err)
	}
	if _, err := Extension("nope-format"); err == nil {
		t.Fatalf("expected extension error")
	}
}

func TestFormatsRegistered(t *testing.T) {
	if got := Formats(); !reflect.DeepEqual(got, []string{"jsonl", "tsv"}) {
		t.Fatalf("formats = %v", got)
	}
}

func TestWriteReportFile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "out")
	dst, err := WriteReport(prefix, "tsv", nil, sampleTable(), Options{Header: true})
	if err != nil {
		t.Fatalf("write report: %v", err)
	}
	if dst != prefix+".tsv" {
		t.Fatalf("dst = %s", dst)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "seqA\t1\t100\t1\t0\t0\t0\n") {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestWriteReportStdout(t *testing.T) {
	var out bytes.Buffer
	dst, err := WriteReport("-", "jsonl", &out, sampleTable(), Options{})
	if err != nil || dst != "-" {
		t.Fatalf("dst=%s err=%v", dst, err)
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("want 2 lines, got %q", out.String())
	}
}

func TestWriteReportUnwritable(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "missing-dir", "out")
	if _, err := WriteReport(prefix, "tsv", nil, sampleTable(), Options{}); err == nil {
		t.Fatalf("expected error for unwritable destination")
	}
}
