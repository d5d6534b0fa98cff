package dna

// Span returns seq[start-1:end] for a 1-based inclusive [start, end] feature
// location. Bounds are clamped to the sequence; an inverted or empty range
// yields an empty slice. The result aliases seq. Callers reading GFF never
// pass coordinates below 1 (gff rejects them).
func Span(seq []byte, start, end int) []byte {
	lo, hi := start-1, end
	if lo < 0 {
		lo = 0
	}
	if hi > len(seq) {
		hi = len(seq)
	}
	if lo >= hi {
		return seq[:0]
	}
	return seq[lo:hi]
}
