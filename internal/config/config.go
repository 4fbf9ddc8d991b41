// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Conf holds the defaults a TOML file may set. Positional arguments are
// never read from the file; explicit flags always win.
//
//	format = "sam"
//	output = "jsonl"
//	sort = true
//	no_header = false
//	allow_unknown = true
//	quiet = false
//	verbose = true
type Conf struct {
	Format       string `toml:"format"`
	Output       string `toml:"output"`
	Sort         bool   `toml:"sort"`
	NoHeader     bool   `toml:"no_header"`
	AllowUnknown bool   `toml:"allow_unknown"`
	Quiet        bool   `toml:"quiet"`
	Verbose      bool   `toml:"verbose"`
}

var DefaultConf = Conf{
	Format: "tab",
	Output: "tsv",
}

// Load decodes r over a copy of DefaultConf. Unknown keys are an error so
// typos do not pass silently.
func Load(r io.Reader) (*Conf, error) {
	conf := DefaultConf
	md, err := toml.NewDecoder(r).Decode(&conf)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("unknown config key %q", und[0].String())
	}
	return &conf, nil
}

func LoadFile(path string) (*Conf, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	conf, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}
