package splitfinder

import (
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/rangealg"
	"github.com/grailbio/base/log"
)

// IdentifyExtraMiddleSplit implements the ADAPTER_MIDDLE strategy: a last
// resort used only when every earlier strategy found no spacer. Searches
// for the adapter, at relaxed edit distance, in a window centered on the
// read's midpoint; if found, additionally requires a flank match at the
// adapter start and a head/tail reverse-complement match, before emitting
// a single degenerate spacer [adapterStart-1, adapterStart).
func IdentifyExtraMiddleSplit(read *duplexread.Read, settings *duplexread.Settings) (rangealg.PosRange, bool) {
	l := uint64(len(read.Seq))
	if l < settings.EndFlank+settings.StartFlank || l < settings.MiddleAdapterSearchSpan {
		return rangealg.PosRange{}, false
	}

	log.Debug.Printf("splitfinder: searching for middle adapter match in read %s", read.ReadID)
	half := settings.MiddleAdapterSearchSpan / 2
	window := rangealg.PosRange{First: l/2 - half, Second: l/2 + half}

	match, ok := FindBestAdapterMatch(settings.Adapter, read.Seq, settings.RelaxedAdapterEdist, window, settings.Debug)
	if !ok {
		return rangealg.PosRange{}, false
	}
	adapterStart := match.First

	log.Debug.Printf("splitfinder: checking middle flank and head/tail match in read %s", read.ReadID)
	if !CheckFlankMatch(settings, read.Seq, rangealg.PosRange{First: adapterStart, Second: adapterStart}, settings.RelaxedFlankEdist) {
		return rangealg.PosRange{}, false
	}
	if !CheckRCMatch(read.Seq,
		rangealg.PosRange{First: l - settings.EndFlank, Second: l - settings.EndTrim},
		rangealg.PosRange{First: 0, Second: settings.StartFlank},
		settings.RelaxedFlankEdist, settings.Debug) {
		return rangealg.PosRange{}, false
	}

	return rangealg.PosRange{First: adapterStart - 1, Second: adapterStart}, true
}
