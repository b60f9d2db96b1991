// Package poresignal scans a raw nanopore current trace for candidate
// open-pore signal intervals: sustained above-threshold current that marks
// the sensing channel running empty between two concatenated reads.
package poresignal

import (
	"time"

	"github.com/esteinig/dorado/rangealg"
	"github.com/grailbio/base/log"
)

// Detect returns the ordered, disjoint, maximal half-open intervals [a, b)
// over signal indices in [prefix, len(signal)) such that every interval
// contains at least one sample above threshold, and consecutive
// above-threshold samples within one interval are separated by at most
// clusterDist sub-threshold samples.
func Detect(signal []float32, threshold float32, clusterDist uint64, prefix uint64) []rangealg.PosRange {
	start := time.Now()
	defer func() {
		log.Debug.Printf("pore signal scan: %s", time.Since(start))
	}()

	var ans []rangealg.PosRange
	var rangeStart, rangeEnd uint64

	for i := prefix; i < uint64(len(signal)); i++ {
		if signal[i] > threshold {
			if rangeEnd == 0 || i > rangeEnd+clusterDist {
				if rangeEnd > 0 {
					ans = append(ans, rangealg.PosRange{First: rangeStart, Second: rangeEnd})
				}
				rangeStart = i
			}
			rangeEnd = i + 1
		}
	}
	if rangeEnd > 0 {
		ans = append(ans, rangealg.PosRange{First: rangeStart, Second: rangeEnd})
	}
	return ans
}

// ThresholdToRaw converts a threshold expressed in picoamps to the raw
// signal scale, given the read's affine scale/shift (pA = scale*raw + shift).
func ThresholdToRaw(thresholdPA, scale, shift float32) float32 {
	return (thresholdPA - shift) / scale
}
