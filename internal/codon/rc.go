package codon

var complement [256]byte

func init() {
	pairs := [...][2]byte{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, // A/G <-> C/T
		{'K', 'M'},
		{'B', 'V'},
		{'D', 'H'},
		{'S', 'S'}, {'W', 'W'},
		{'N', 'N'},
	}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[1]] = p[0]
		complement[p[0]|0x20] = p[1]
		complement[p[1]|0x20] = p[0]
	}
	complement['U'] = 'A'
	complement['u'] = 'A'
}

// Complement returns the upper-case Watson-Crick partner of b. IUPAC
// ambiguity codes map to their complementary code; anything else becomes N.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// ReverseComplement returns a new slice holding the reverse complement of seq.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}
