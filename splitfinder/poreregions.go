package splitfinder

import (
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/poresignal"
	"github.com/esteinig/dorado/rangealg"
	"github.com/grailbio/base/log"
)

// PossiblePoreRegions enumerates candidate spacer sequence ranges from a
// read's raw signal: detect open-pore signal intervals at poreThrPA, map
// each to move-vector indices, and discard any that fall past the end of
// the move table or before the first base was emitted.
func PossiblePoreRegions(read *duplexread.ExtRead, settings *duplexread.Settings, poreThrPA float32) []rangealg.PosRange {
	stride := uint64(read.Read.ModelStride)
	rawThr := poresignal.ThresholdToRaw(poreThrPA, read.Read.Scale, read.Read.Shift)

	var regions []rangealg.PosRange
	for _, sig := range poresignal.Detect(read.Signal, rawThr, settings.PoreClDist, settings.ExpectPorePrefix) {
		moveStart := sig.First / stride
		moveEnd := sig.Second / stride
		if moveStart >= uint64(len(read.MoveSums)) || moveEnd >= uint64(len(read.MoveSums)) {
			continue // at the very end of the signal
		}
		if read.MoveSums[moveStart] == 0 {
			continue // basecalls have not started yet
		}
		startPos := read.MoveSums[moveStart] - 1
		endPos := read.MoveSums[moveEnd]
		regions = append(regions, rangealg.PosRange{First: startPos, Second: endPos})
	}

	log.Debug.Printf("splitfinder: %d pore regions to check in read %s", len(regions), read.Read.ReadID)
	return regions
}
