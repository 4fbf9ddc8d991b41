// internal/coverage/table.go
package coverage

import "sort"

// Hit is one alignment's target name and coordinates.
type Hit struct {
	Target string
	Start  uint64
	End    uint64
}

// Normalize orders the coordinates so Start <= End.
func (h Hit) Normalize() Hit {
	if h.End < h.Start {
		h.Start, h.End = h.End, h.Start
	}
	return h
}

// Sequence is the coverage profile of one reference sequence.
type Sequence struct {
	Name   string
	Length uint64
	Bins   []Bin
	Found  bool
}

// NewSequence builds a sequence with n empty bins.
func NewSequence(name string, length uint64, n int) *Sequence {
	return &Sequence{Name: name, Length: length, Bins: MakeBins(length, n)}
}

// AddHit increments every bin containing start or end and returns how many
// bins were incremented. Coordinate order does not matter.
func (s *Sequence) AddHit(start, end uint64) int {
	if end < start {
		start, end = end, start
	}
	n := 0
	for i := range s.Bins {
		b := &s.Bins[i]
		if b.Contains(start) || b.Contains(end) {
			b.Count++
			n++
		}
	}
	if n > 0 {
		s.Found = true
	}
	return n
}

// Counts returns the per-bin hit counts in bin order.
func (s *Sequence) Counts() []uint64 {
	out := make([]uint64, len(s.Bins))
	for i, b := range s.Bins {
		out[i] = b.Count
	}
	return out
}

// Table maps sequence names to profiles and remembers insertion order,
// which is the order rows are reported in.
type Table struct {
	bins  int
	seqs  []*Sequence
	index map[string]int
}

func NewTable(bins int) *Table {
	return &Table{bins: bins, index: make(map[string]int)}
}

// Bins is the number of bins every sequence in t carries.
func (t *Table) Bins() int { return t.bins }

func (t *Table) Len() int { return len(t.seqs) }

// Put creates a fresh profile for name. A repeated name replaces the
// earlier profile but keeps its row position.
func (t *Table) Put(name string, length uint64) *Sequence {
	s := NewSequence(name, length, t.bins)
	if i, ok := t.index[name]; ok {
		t.seqs[i] = s
		return s
	}
	t.index[name] = len(t.seqs)
	t.seqs = append(t.seqs, s)
	return s
}

func (t *Table) Get(name string) (*Sequence, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.seqs[i], true
}

// Sequences returns the profiles in row order. The slice is shared.
func (t *Table) Sequences() []*Sequence { return t.seqs }

// SortByName reorders rows lexically by sequence name.
func (t *Table) SortByName() {
	sort.SliceStable(t.seqs, func(i, j int) bool { return t.seqs[i].Name < t.seqs[j].Name })
	for i, s := range t.seqs {
		t.index[s.Name] = i
	}
}
