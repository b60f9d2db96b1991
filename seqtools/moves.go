package seqtools

// MovesToMap inverts the basecaller's per-stride move vector into a
// sequence-index -> signal-sample-index map. moves has one entry per model
// stride; a 1 marks the stride at which the next base was emitted. The
// returned slice has length seqLenPlusOne (== the number of 1-entries in
// moves, plus one): entry i gives the signal sample index at which the i-th
// base begins, and the final entry is always signalLen.
func MovesToMap(moves []uint8, stride int, signalLen uint64, seqLenPlusOne int) []uint64 {
	m := make([]uint64, 0, seqLenPlusOne)
	for i, mv := range moves {
		if mv != 0 {
			m = append(m, uint64(i*stride))
		}
	}
	m = append(m, signalLen)
	return m
}

// MoveCumSums returns the running cumulative sum of moves: cumsum[i] is the
// number of bases emitted by (and including) stride i.
func MoveCumSums(moves []uint8) []uint64 {
	sums := make([]uint64, len(moves))
	var running uint64
	for i, mv := range moves {
		running += uint64(mv)
		sums[i] = running
	}
	return sums
}
