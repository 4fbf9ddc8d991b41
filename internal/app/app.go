// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dmndcov/internal/alignments"
	"dmndcov/internal/cli"
	"dmndcov/internal/cmdutil"
	"dmndcov/internal/inputs"
	"dmndcov/internal/lengths"
	"dmndcov/internal/writers"
)

// Name is the program name shown in usage and version output.
const Name = "dmnd-cov-stats"

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitInput       = 2
	ExitOutput      = 3
	ExitInterrupted = 130
)

// maxNamesShown caps the unknown-target list in the skip warning.
const maxNamesShown = 5

// outputError marks failures that happen while writing the report.
type outputError struct{ err error }

func (e *outputError) Error() string { return e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// help / version text goes through outw; the report is written unbuffered
	// to stdout by its own writer.
	outw := bufio.NewWriter(stdout)

	cmd := cli.NewCommand(Name, func(ctx context.Context, o cli.Options) error {
		return run(ctx, o, stdin, stdout, stderr)
	})
	if argv == nil {
		// cobra falls back to os.Args on nil.
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(parent)
	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitOutput
	}

	var oerr *outputError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, cli.ErrUsage):
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &oerr):
		cmdutil.Errorf(stderr, "%v", err)
		return ExitOutput
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return ExitInput
	}
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// run loads the length table, streams every hit into it, and writes the
// report only once all input has been consumed, so an input failure never
// leaves partial output behind.
func run(ctx context.Context, o cli.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	table, err := lengths.LoadTSV(o.LengthsFile, stdin, o.Bins)
	if err != nil {
		return err
	}

	// bam.NewReader does its own BGZF decoding.
	open := inputs.Open
	if o.Format == alignments.FormatBAM {
		open = inputs.OpenRaw
	}
	src, err := open(o.AlignmentsFile, stdin)
	if err != nil {
		return err
	}
	defer src.Close()

	rd, err := alignments.NewReader(o.Format, src, sourceName(o.AlignmentsFile))
	if err != nil {
		return err
	}
	if c, ok := rd.(io.Closer); ok {
		defer c.Close()
	}

	st, err := alignments.Process(ctx, rd, table, alignments.Options{AllowUnknown: o.AllowUnknown})
	if err != nil {
		return err
	}
	if st.Skipped > 0 {
		names := st.UnknownTargets()
		cmdutil.Warnf(stderr, o.Quiet, "skipped %d hit(s) on %d sequence(s) missing from %s: %s",
			st.Skipped, len(names), o.LengthsFile, abbreviate(names, maxNamesShown))
	}

	if o.Sort {
		table.SortByName()
	}
	dst, err := writers.WriteReport(o.OutputPrefix, o.Output, stdout, table, writers.Options{Header: o.Header})
	if err != nil {
		return &outputError{err: err}
	}
	cmdutil.Infof(stderr, o.Verbose, "%d sequences x %d bins; %d records, %d counted, %d skipped; report: %s",
		table.Len(), table.Bins(), st.Records, st.Applied, st.Skipped, sourceName(dst))
	return nil
}

func sourceName(path string) string {
	if path == inputs.Stdin {
		return "stdin"
	}
	return path
}

func abbreviate(names []string, n int) string {
	if len(names) <= n {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s, ... (%d more)", strings.Join(names[:n], ", "), len(names)-n)
}
