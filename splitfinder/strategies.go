package splitfinder

import (
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/rangealg"
)

// Kind identifies one of the five split-finder strategies. The set is
// closed, small, and ordered, so a tagged-variant enumeration with a single
// dispatch function reads clearer than a vector of closures — Kind plus
// Strategies (below) is that dispatch table.
type Kind int

const (
	PoreAdapter Kind = iota
	PoreFlank
	PoreAll
	AdapterFlank
	AdapterMiddle
)

func (k Kind) String() string {
	switch k {
	case PoreAdapter:
		return "PORE_ADAPTER"
	case PoreFlank:
		return "PORE_FLANK"
	case PoreAll:
		return "PORE_ALL"
	case AdapterFlank:
		return "ADAPTER_FLANK"
	case AdapterMiddle:
		return "ADAPTER_MIDDLE"
	default:
		return "UNKNOWN"
	}
}

// Find runs the strategy k against read under settings, returning the
// ordered spacer sequence ranges it proposes.
func (k Kind) Find(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	switch k {
	case PoreAdapter:
		return findPoreAdapter(read, settings)
	case PoreFlank:
		return findPoreFlank(read, settings)
	case PoreAll:
		return findPoreAll(read, settings)
	case AdapterFlank:
		return findAdapterFlank(read, settings)
	case AdapterMiddle:
		return findAdapterMiddle(read, settings)
	default:
		return nil
	}
}

// Strategies returns the ordered strategy list to run: just PORE_ADAPTER in
// simplex mode, since a simplex read has no complementary strand for the
// flank/RC checks of the other strategies to exploit, and all five
// otherwise.
func Strategies(settings *duplexread.Settings) []Kind {
	if settings.SimplexMode {
		return []Kind{PoreAdapter}
	}
	return []Kind{PoreAdapter, PoreFlank, PoreAll, AdapterFlank, AdapterMiddle}
}

func findPoreAdapter(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	return rangealg.Filter(
		PossiblePoreRegions(read, settings, settings.PoreThr),
		func(r rangealg.PosRange) bool {
			return CheckNearbyAdapter(settings, read.Read.Seq, r, settings.AdapterEdist)
		})
}

func findPoreFlank(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	return rangealg.Merge(rangealg.Filter(
		PossiblePoreRegions(read, settings, settings.PoreThr),
		func(r rangealg.PosRange) bool {
			return CheckFlankMatch(settings, read.Read.Seq, r, settings.FlankEdist)
		}), settings.EndFlank+settings.StartFlank)
}

func findPoreAll(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	return rangealg.Merge(rangealg.Filter(
		PossiblePoreRegions(read, settings, settings.RelaxedPoreThr),
		func(r rangealg.PosRange) bool {
			return CheckNearbyAdapter(settings, read.Read.Seq, r, settings.RelaxedAdapterEdist) &&
				CheckFlankMatch(settings, read.Read.Seq, r, settings.RelaxedFlankEdist)
		}), settings.EndFlank+settings.StartFlank)
}

func findAdapterFlank(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	matches := FindAdapterMatches(settings.Adapter, read.Read.Seq, settings.AdapterEdist,
		rangealg.PosRange{First: settings.ExpectAdapterPrefix, Second: uint64(len(read.Read.Seq))}, settings.Debug)
	return rangealg.Filter(matches, func(r rangealg.PosRange) bool {
		return CheckFlankMatch(settings, read.Read.Seq, rangealg.PosRange{First: r.First, Second: r.First}, settings.FlankEdist)
	})
}

func findAdapterMiddle(read *duplexread.ExtRead, settings *duplexread.Settings) []rangealg.PosRange {
	if split, ok := IdentifyExtraMiddleSplit(read.Read, settings); ok {
		return []rangealg.PosRange{split}
	}
	return nil
}
