// Package alignments streams alignment hits from DIAMOND tabular output
// (or SAM/BAM) and applies them to a coverage.Table one record at a time.
package alignments
