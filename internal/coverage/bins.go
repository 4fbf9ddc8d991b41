// internal/coverage/bins.go
package coverage

// Bin is one equal-width slice of a sequence. Hit tests treat both bounds
// as inclusive, so a position on a shared boundary lands in both neighbours.
type Bin struct {
	Lower  float64
	Upper  float64
	Middle float64
	Count  uint64
}

// Contains reports whether pos falls within [Lower, Upper].
func (b Bin) Contains(pos uint64) bool {
	p := float64(pos)
	return p >= b.Lower && p <= b.Upper
}

// MakeBins partitions [0, length) into n equal-width bins.
// n need not divide length; bounds are float64.
func MakeBins(length uint64, n int) []Bin {
	if n <= 0 {
		return nil
	}
	bins := make([]Bin, n)
	l, fn := float64(length), float64(n)
	for i := range bins {
		lower := float64(i) * l / fn
		upper := float64(i+1) * l / fn
		bins[i] = Bin{Lower: lower, Upper: upper, Middle: lower + (upper-lower)/2}
	}
	return bins
}

// Labels returns the report column labels (i-0.5)/n for i in 1..n.
// They describe a unit partition and are the same for every sequence,
// regardless of its length.
func Labels(n int) []float64 {
	out := make([]float64, n)
	for i := 1; i <= n; i++ {
		out[i-1] = (float64(i) - 0.5) / float64(n)
	}
	return out
}
