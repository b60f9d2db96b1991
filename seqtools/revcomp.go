// Package seqtools implements the sequence-coordinate utilities the split
// engine treats as external collaborators: reverse-complement of a base
// sequence, and the move-vector-to-signal-index map.
package seqtools

// revCompTable maps an ASCII base byte to its complement, defaulting to 'N'
// for anything outside {A,C,G,T,N} (and their lowercase forms). Adapted from
// biosimd's lookup-table reverse-complement: same table shape, same
// in-place swap-from-both-ends loop, without the AMD64 SIMD fast path.
var revCompTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	t['A'], t['a'] = 'T', 'T'
	t['C'], t['c'] = 'G', 'G'
	t['G'], t['g'] = 'C', 'C'
	t['T'], t['t'] = 'A', 'A'
	t['N'], t['n'] = 'N', 'N'
	return t
}()

// ReverseComplementInplace reverse-complements seq in place, over
// {A,C,G,T,N} (case-insensitive on input, uppercase on output).
func ReverseComplementInplace(seq []byte) {
	n := len(seq)
	half := n / 2
	for i, j := 0, n-1; i != half; i, j = i+1, j-1 {
		seq[i], seq[j] = revCompTable[seq[j]], revCompTable[seq[i]]
	}
	if n&1 == 1 {
		seq[half] = revCompTable[seq[half]]
	}
}

// ReverseComplement returns the reverse complement of seq as a new slice,
// leaving seq untouched.
func ReverseComplement(seq string) string {
	buf := []byte(seq)
	ReverseComplementInplace(buf)
	return string(buf)
}
