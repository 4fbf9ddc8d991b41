// pkg/api/coverage_v1.go
package api

// SequenceCoverageV1 is the stable JSONL schema for one coverage row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceCoverageV1 struct {
	SequenceName   string  `json:"sequence_name"`
	Found          bool    `json:"found"`
	SequenceLength uint64  `json:"sequence_length"`
	Bins           []BinV1 `json:"bins"`
}

// BinV1 carries both the fixed report label and the sequence's own bin
// geometry, which the TSV report does not show.
type BinV1 struct {
	Label  float64 `json:"label"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Count  uint64  `json:"count"`
}
