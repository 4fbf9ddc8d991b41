package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if *c != DefaultConf {
		t.Fatalf("got %+v, want defaults", *c)
	}
}

func TestLoadValues(t *testing.T) {
	c, err := Load(strings.NewReader("format = \"sam\"\nsort = true\nallow_unknown = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Format != "sam" || !c.Sort || !c.AllowUnknown || c.Output != "tsv" {
		t.Fatalf("got %+v", *c)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	if _, err := Load(strings.NewReader("bins = 10\n")); err == nil || !strings.Contains(err.Error(), "bins") {
		t.Fatalf("want unknown key error, got %v", err)
	}
}

func TestLoadDoesNotMutateDefaults(t *testing.T) {
	if _, err := Load(strings.NewReader("output = \"jsonl\"\n")); err != nil {
		t.Fatal(err)
	}
	if DefaultConf.Output != "tsv" {
		t.Fatalf("DefaultConf mutated: %+v", DefaultConf)
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cov.toml")
	if err := os.WriteFile(fn, []byte("quiet = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(fn)
	if err != nil || !c.Quiet {
		t.Fatalf("c=%+v err=%v", c, err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
