package duplexread

import (
	"fmt"

	"github.com/esteinig/dorado/rangealg"
	"github.com/grailbio/base/log"
)

// Subread produces an immutable-looking child Read from parent, covering
// seqRange sequence positions and sigRange signal samples: it derives a
// stable child UUID, adjusts start_time forward by the number of samples
// trimmed off the front, and slices raw signal / sequence / qualities /
// moves to the given ranges.
//
// Preconditions (violations are programmer errors and abort the calling
// worker via log.Panicf, since a malformed range means an upstream bug in
// the caller, not bad input data):
//   - sigRange.First is a multiple of parent.ModelStride.
//   - sigRange.Second is a multiple of ModelStride, or sigRange.Second is
//     the full length of parent.RawSignal and seqRange.Second is the full
//     length of parent.Seq (a ragged tail is permitted only at the very end).
func Subread(parent *Read, seqRange, sigRange rangealg.PosRange) *Read {
	stride := uint64(parent.ModelStride)
	rawLen := uint64(len(parent.RawSignal))

	if sigRange.First%stride != 0 {
		log.Panicf("duplexread: subread signal start %d is not a multiple of stride %d", sigRange.First, stride)
	}
	raggedTail := sigRange.Second == rawLen && seqRange.Second == uint64(len(parent.Seq))
	if sigRange.Second%stride != 0 && !raggedTail {
		log.Panicf("duplexread: subread signal end %d is not a multiple of stride %d and not a ragged tail", sigRange.Second, stride)
	}

	child := parent.Clone()

	child.ReadID = DeriveUUID(parent.ReadID, fmt.Sprintf("%d-%d", seqRange.First, seqRange.Second))
	child.RawSignal = append([]int16(nil), parent.RawSignal[sigRange.First:sigRange.Second]...)
	child.Seq = parent.Seq[seqRange.First:seqRange.Second]
	child.QString = parent.QString[seqRange.First:seqRange.Second]
	child.Moves = append([]uint8(nil), parent.Moves[sigRange.First/stride:sigRange.Second/stride]...)

	child.Attributes.ReadNumber = SentinelReadNumber
	offsetMs := (parent.NumTrimmedSamples + sigRange.First) * 1000 / parent.SampleRate
	newStart, err := AdjustTimeMS(parent.Attributes.StartTime, offsetMs)
	if err != nil {
		log.Panicf("duplexread: parent %s has unparseable start_time %q: %v", parent.ReadID, parent.Attributes.StartTime, err)
	}
	child.Attributes.StartTime = newStart
	child.NumTrimmedSamples = 0

	if sigRange.Second != rawLen && uint64(len(child.Moves))*stride != uint64(len(child.RawSignal)) {
		log.Panicf("duplexread: subread post-invariant violated: len(moves)*stride=%d != len(raw_signal)=%d",
			uint64(len(child.Moves))*stride, len(child.RawSignal))
	}

	return child
}
