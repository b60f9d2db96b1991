// Package splitfinder implements the five independent duplex-split-finder
// strategies, the orchestrator that applies them iteratively to a working
// set of reads, and the cut operation that turns spacer ranges into child
// Reads.
package splitfinder

import (
	"github.com/esteinig/dorado/align"
	"github.com/esteinig/dorado/rangealg"
	"github.com/grailbio/base/log"
)

// FindBestAdapterMatch performs semi-global ("adapter infix of seq")
// alignment of adapter against seq[subrange), returning the match in
// absolute seq coordinates when its edit distance is within distThr.
// Returns (zero, false) for an empty subrange or when no match scores
// within threshold — an aligner failure is logged and treated identically
// to "no match" so a transient aligner error never spuriously triggers a
// split. When debug is set, the full alignment path is requested and
// logged as a three-line ASCII trace at debug level.
func FindBestAdapterMatch(adapter, seq string, distThr int, subrange rangealg.PosRange, debug bool) (rangealg.PosRange, bool) {
	if subrange.Empty() {
		return rangealg.PosRange{}, false
	}
	target := seq[subrange.First:subrange.Second]

	task := align.TaskLocation
	if debug {
		task = align.TaskPath
	}
	res, err := align.Align(adapter, target, align.Config{
		MaxEditDistance: distThr,
		Mode:            align.Infix,
		Task:            task,
	})
	if err != nil {
		log.Debug.Printf("splitfinder: adapter alignment failed, treating as no match: %v", err)
		return rangealg.PosRange{}, false
	}
	if res.Status != align.StatusOK || res.EditDistance == -1 {
		return rangealg.PosRange{}, false
	}
	if debug {
		log.Debug.Printf("splitfinder: adapter alignment trace (edit distance %d):\n%s",
			res.EditDistance, align.FormatDotPlot(adapter, target, res))
	}
	return rangealg.PosRange{
		First:  subrange.First + uint64(res.Start),
		Second: subrange.First + uint64(res.End),
	}, true
}

// FindAdapterMatches currently returns at most the single best match: the
// original implementation's left/right recursive search past the best
// match is permanently disabled upstream, so this keeps that documented
// shape (length 0 or 1) rather than reimplementing dead code.
func FindAdapterMatches(adapter, seq string, distThr int, subrange rangealg.PosRange, debug bool) []rangealg.PosRange {
	if m, ok := FindBestAdapterMatch(adapter, seq, distThr, subrange, debug); ok {
		return []rangealg.PosRange{m}
	}
	return nil
}
