// internal/cli/options.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dmndcov/internal/alignments"
	"dmndcov/internal/config"
	"dmndcov/internal/inputs"
	"dmndcov/internal/version"
	"dmndcov/internal/writers"
)

// ErrUsage marks bad invocations: wrong positional count, bad flag values.
var ErrUsage = errors.New("usage error")

// Positionals is the argument part of the usage line.
const Positionals = "<sequence_lengths_file> <diamond_output_file|-> <output_prefix|-> <number_of_bins>"

type Options struct {
	// Positionals
	LengthsFile    string
	AlignmentsFile string
	OutputPrefix   string
	Bins           int

	// Input
	Format       string // tab|sam|bam
	AllowUnknown bool
	ConfigFile   string

	// Output
	Output string // any writers.Formats() entry
	Sort   bool
	Header bool

	// Misc
	Quiet   bool
	Verbose bool
}

// RunFunc receives fully merged and validated options.
type RunFunc func(ctx context.Context, o Options) error

// NewCommand builds the root command. Parsing, config merging and
// validation happen before run is called; help and --version never reach it.
func NewCommand(name string, run RunFunc) *cobra.Command {
	var (
		o        Options
		noHeader bool
	)
	cmd := &cobra.Command{
		Use:   name + " [flags] " + Positionals,
		Short: "Binned positional coverage of reference sequences from alignment hits",
		Long: `Splits every sequence of the length table into number_of_bins equal-width
bins and counts, per bin, the alignment hits whose start or end falls
inside it (bounds inclusive). Writes one row per sequence to
<output_prefix>.tsv, or to stdout when output_prefix is '-'.
Use '-' as diamond_output_file to read hits from stdin.`,
		Example: "  diamond blastx ... --outfmt 6 qseqid sseqid pident qstart qend sstart send evalue bitscore qlen slen \\\n" +
			"    | " + name + " lengths.tsv - sample 10\n" +
			"  " + name + " --sort --format sam lengths.tsv hits.sam.gz - 20",
		Version:       version.Version,
		Args:          exactPositionals,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mergeConfig(cmd, &o, &noHeader); err != nil {
				return err
			}
			o.Header = !noHeader
			if err := setPositionals(&o, args); err != nil {
				return err
			}
			if err := Validate(&o); err != nil {
				return err
			}
			return run(cmd.Context(), o)
		},
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&o.Format, "format", "f", config.DefaultConf.Format, "alignment format: tab | sam | bam")
	fs.BoolVar(&o.AllowUnknown, "allow-unknown", false, "skip hits on sequences missing from the length table (warns)")
	fs.StringVarP(&o.Output, "output", "o", config.DefaultConf.Output, "report format: "+strings.Join(writers.Formats(), " | "))
	fs.BoolVar(&o.Sort, "sort", false, "sort rows by sequence name (default: length table order)")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the TSV header line")
	fs.StringVar(&o.ConfigFile, "config", "", "TOML file with flag defaults")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVar(&o.Verbose, "verbose", false, "print record counts to stderr")
	return cmd
}

func exactPositionals(_ *cobra.Command, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: expected 4 arguments, got %d", ErrUsage, len(args))
	}
	return nil
}

func setPositionals(o *Options, args []string) error {
	o.LengthsFile, o.AlignmentsFile, o.OutputPrefix = args[0], args[1], args[2]
	n, err := strconv.Atoi(args[3])
	if err != nil || n <= 0 {
		return fmt.Errorf("%w: number_of_bins must be a positive integer, got %q", ErrUsage, args[3])
	}
	o.Bins = n
	return nil
}

// mergeConfig applies --config values to every flag the user did not set.
func mergeConfig(cmd *cobra.Command, o *Options, noHeader *bool) error {
	if o.ConfigFile == "" {
		return nil
	}
	c, err := config.LoadFile(o.ConfigFile)
	if err != nil {
		return err
	}
	set := cmd.Flags().Changed
	if !set("format") {
		o.Format = c.Format
	}
	if !set("output") {
		o.Output = c.Output
	}
	if !set("sort") {
		o.Sort = c.Sort
	}
	if !set("no-header") {
		*noHeader = c.NoHeader
	}
	if !set("allow-unknown") {
		o.AllowUnknown = c.AllowUnknown
	}
	if !set("quiet") {
		o.Quiet = c.Quiet
	}
	if !set("verbose") {
		o.Verbose = c.Verbose
	}
	return nil
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Bins <= 0 {
		return fmt.Errorf("%w: number_of_bins must be > 0", ErrUsage)
	}
	switch o.Format {
	case alignments.FormatTab, alignments.FormatSAM, alignments.FormatBAM:
	default:
		return fmt.Errorf("%w: invalid --format %q", ErrUsage, o.Format)
	}
	if _, err := writers.Extension(o.Output); err != nil {
		return fmt.Errorf("%w: invalid --output %q (want one of: %s)", ErrUsage, o.Output, strings.Join(writers.Formats(), ", "))
	}
	if o.LengthsFile == inputs.Stdin && o.AlignmentsFile == inputs.Stdin {
		return fmt.Errorf("%w: only one input can be read from stdin", ErrUsage)
	}
	return nil
}
