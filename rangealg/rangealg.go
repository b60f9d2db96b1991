// Package rangealg implements the small interval algebra the duplex split
// engine needs over half-open position ranges: stable filtering and
// adjacency merging. Ranges are always [first, second) and, where the
// contract requires it, assumed sorted by first on input.
package rangealg

import "fmt"

// PosRange is a half-open interval [First, Second) over sequence or signal
// sample positions. First <= Second.
type PosRange struct {
	First, Second uint64
}

// Len returns the number of positions covered by r.
func (r PosRange) Len() uint64 {
	return r.Second - r.First
}

// Empty reports whether r covers no positions.
func (r PosRange) Empty() bool {
	return r.First == r.Second
}

func (r PosRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.First, r.Second)
}

// Filter retains, in input order, every range for which keep returns true.
func Filter(ranges []PosRange, keep func(PosRange) bool) []PosRange {
	filtered := make([]PosRange, 0, len(ranges))
	for _, r := range ranges {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Merge merges consecutive ranges (assumed sorted by First) whose gap is at
// most dist, extending the earlier range's Second. The result is sorted,
// non-overlapping, and separated by gaps greater than dist.
func Merge(ranges []PosRange, dist uint64) []PosRange {
	merged := make([]PosRange, 0, len(ranges))
	for _, r := range ranges {
		if len(merged) == 0 || r.First > merged[len(merged)-1].Second+dist {
			merged = append(merged, r)
		} else if r.Second > merged[len(merged)-1].Second {
			merged[len(merged)-1].Second = r.Second
		}
	}
	return merged
}
