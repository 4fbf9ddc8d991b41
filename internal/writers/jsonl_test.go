package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"dmndcov/pkg/api"
)

func TestWriteJSONLRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSONL(&buf, sampleTable(), Options{Header: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var rows []api.SequenceCoverageV1
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var r api.SequenceCoverageV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		rows = append(rows, r)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	a := rows[0]
	if a.SequenceName != "seqA" || !a.Found || a.SequenceLength != 100 || len(a.Bins) != 4 {
		t.Fatalf("row0 = %+v", a)
	}
	if a.Bins[0].Count != 1 || a.Bins[0].Label != 0.125 || a.Bins[0].Middle != 12.5 {
		t.Fatalf("bin0 = %+v", a.Bins[0])
	}
	if rows[1].Found {
		t.Fatalf("seqB should not be found")
	}
}
