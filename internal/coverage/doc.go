// Package coverage holds the binned coverage model: per-sequence bins, the
// inclusive hit rule, and the insertion-ordered table the report is read
// from. It never imports readers, writers or cli; keep it domain-only.
package coverage
