// Package writers turns a filled coverage.Table into report files.
//
// Design:
//   - Writers own all presentation knowledge (TSV labels, JSONL rows).
//   - coverage stays domain-only; alignments stays streaming-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
