// core/dna/revcomp.go
package dna

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i) // unknown symbols pass through unchanged
	}
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		la, lb := a|0x20, b|0x20
		complement[la], complement[lb] = lb, la
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('S', 'S')
	pair('W', 'W')
	pair('N', 'N')
	complement['U'], complement['u'] = 'A', 'a'
}

// Complement returns the IUPAC complement of b, keeping its case.
func Complement(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of seq in a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
