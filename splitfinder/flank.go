package splitfinder

import (
	"github.com/esteinig/dorado/align"
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/rangealg"
	"github.com/esteinig/dorado/seqtools"
	"github.com/grailbio/base/log"
)

// CheckRCMatch performs infix alignment of seq[templRange] inside the
// reverse complement of seq[complRange], returning true iff the edit
// distance is within distThr. Preconditions: both ranges non-empty,
// distThr >= 0 — violating either is a programmer error handled by the
// caller, not by this function (it simply reports false on the degenerate
// cases so a misuse fails a strategy rather than the whole read). When
// debug is set and the flanks match, the full alignment path is requested
// and logged as a three-line ASCII trace at debug level.
func CheckRCMatch(seq string, templRange, complRange rangealg.PosRange, distThr int, debug bool) bool {
	if templRange.Empty() || complRange.Empty() || distThr < 0 {
		return false
	}
	templ := seq[templRange.First:templRange.Second]
	compl := seqtools.ReverseComplement(seq[complRange.First:complRange.Second])

	task := align.TaskDistance
	if debug {
		task = align.TaskPath
	}
	res, err := align.Align(templ, compl, align.Config{
		MaxEditDistance: distThr,
		Mode:            align.Infix,
		Task:            task,
	})
	if err != nil {
		log.Debug.Printf("splitfinder: rc-match alignment failed, treating as no match: %v", err)
		return false
	}
	ok := res.Status == align.StatusOK && res.EditDistance != -1
	if debug && ok {
		log.Debug.Printf("splitfinder: rc-match alignment trace (edit distance %d):\n%s",
			res.EditDistance, align.FormatDotPlot(templ, compl, res))
	}
	return ok
}

// CheckFlankMatch reports whether the flanks around candidate spacer r —
// [r.First-EndFlank, r.First-EndTrim) upstream and
// [r.First, r.Second+StartFlank) downstream — reverse-complement match at
// edit distance <= thr. Only valid (and only ever true) when both flanks
// fit inside seq; out-of-range spacers simply fail the check.
func CheckFlankMatch(settings *duplexread.Settings, seq string, r rangealg.PosRange, thr int) bool {
	if r.First < settings.EndFlank || r.Second+settings.StartFlank > uint64(len(seq)) {
		return false
	}
	return CheckRCMatch(seq,
		rangealg.PosRange{First: r.First - settings.EndFlank, Second: r.First - settings.EndTrim},
		rangealg.PosRange{First: r.First, Second: r.Second + settings.StartFlank},
		thr, settings.Debug)
}

// CheckNearbyAdapter reports whether an adapter match exists at or below
// adapterEdist within [r.First, min(r.Second+PoreAdapterRange, len(seq))),
// including the candidate spacer region itself in the search window.
func CheckNearbyAdapter(settings *duplexread.Settings, seq string, r rangealg.PosRange, adapterEdist int) bool {
	end := r.Second + settings.PoreAdapterRange
	if uint64(len(seq)) < end {
		end = uint64(len(seq))
	}
	_, ok := FindBestAdapterMatch(settings.Adapter, seq, adapterEdist, rangealg.PosRange{First: r.First, Second: end}, settings.Debug)
	return ok
}
