package splitfinder

import (
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/rangealg"
	"github.com/esteinig/dorado/seqtools"
)

// Cut applies a sorted, disjoint list of spacer sequence-ranges to parent,
// producing the subreads that remain once every spacer is removed. An
// empty spacer list returns parent unchanged (Split itself never calls Cut
// without spacers; it keeps such a read as it is).
func Cut(parent *duplexread.Read, spacers []rangealg.PosRange) []*duplexread.Read {
	if len(spacers) == 0 {
		return []*duplexread.Read{parent}
	}

	subreads := make([]*duplexread.Read, 0, len(spacers)+1)
	seqToSig := seqtools.MovesToMap(parent.Moves, parent.ModelStride, uint64(len(parent.RawSignal)), len(parent.Seq)+1)

	qStart := uint64(0)
	sStart := seqToSig[0]
	for _, r := range spacers {
		subreads = append(subreads, duplexread.Subread(parent,
			rangealg.PosRange{First: qStart, Second: r.First},
			rangealg.PosRange{First: sStart, Second: seqToSig[r.First]}))
		qStart = r.Second
		sStart = seqToSig[r.Second]
	}
	subreads = append(subreads, duplexread.Subread(parent,
		rangealg.PosRange{First: qStart, Second: uint64(len(parent.Seq))},
		rangealg.PosRange{First: sStart, Second: uint64(len(parent.RawSignal))}))

	return subreads
}
