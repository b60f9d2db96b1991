package duplexread

import (
	"github.com/esteinig/dorado/seqtools"
	"github.com/grailbio/base/log"
)

// ExtRead wraps a Read with the derived values the split-finder strategies
// need repeatedly: the signal cast to floating point, and the cumulative
// sum of the move vector. Built once per Read and immutable thereafter, so
// that five successive split-finder passes never recompute either.
type ExtRead struct {
	Read      *Read
	Signal    []float32
	MoveSums  []uint64
}

// NewExtRead builds the working-set wrapper for r, panicking via
// log.Panicf — the split engine's policy for invariant violations, which
// signal a bug upstream rather than bad input — if r's cumulative-sum
// invariant does not hold.
func NewExtRead(r *Read) *ExtRead {
	sums := seqtools.MoveCumSums(r.Moves)
	if len(sums) > 0 && sums[len(sums)-1] != uint64(len(r.Seq)) {
		log.Panicf("duplexread: read %s violates cumulative-sum invariant: sum(moves)=%d len(seq)=%d",
			r.ReadID, sums[len(sums)-1], len(r.Seq))
	}
	if len(sums) == 0 && len(r.Seq) != 0 {
		log.Panicf("duplexread: read %s has no moves but a non-empty seq", r.ReadID)
	}

	signal := make([]float32, len(r.RawSignal))
	for i, s := range r.RawSignal {
		signal[i] = float32(s)
	}

	return &ExtRead{Read: r, Signal: signal, MoveSums: sums}
}
