package duplexread

// Settings configures the duplex split engine end to end: pore-signal
// thresholds, adapter/flank edit-distance tolerances, and the flank
// geometry each split-finder strategy uses.
type Settings struct {
	Enabled     bool
	SimplexMode bool

	PoreThr        float32 // pA, strong pore signal threshold
	RelaxedPoreThr float32 // pA, lower threshold for combined strategies
	PoreClDist     uint64  // samples, max gap within one pore cluster

	ExpectPorePrefix    uint64 // leading samples ignored when searching for pore signal
	ExpectAdapterPrefix uint64 // leading bases ignored when searching for adapters

	Adapter string

	AdapterEdist        int
	RelaxedAdapterEdist int

	FlankEdist        int
	RelaxedFlankEdist int

	EndFlank  uint64 // flank length upstream of candidate spacer
	StartFlank uint64 // flank length downstream of candidate spacer
	EndTrim   uint64 // bases skipped immediately before the spacer

	PoreAdapterRange         uint64 // how far downstream of a pore region to search for the adapter
	MiddleAdapterSearchSpan  uint64 // window width for ADAPTER_MIDDLE

	// Debug, when set, requests full alignment paths from the aligner and
	// logs an ASCII dot-plot of each adapter and flank alignment that
	// matches, at debug level — a run-time equivalent of the original implementation's
	// compile-time DEBUG build flag.
	Debug bool
}

// DefaultSettings returns the values dorado itself ships for DNA duplex
// splitting: a 60bp adapter, conservative edit-distance thresholds, and
// flank windows tuned for typical read lengths.
func DefaultSettings() Settings {
	return Settings{
		Enabled:                 true,
		SimplexMode:             false,
		PoreThr:                 80.0,
		RelaxedPoreThr:          60.0,
		PoreClDist:              100,
		ExpectPorePrefix:        0,
		ExpectAdapterPrefix:     0,
		Adapter:                 "GGCGTCTGCTTGGGTGTTTAACCTTTTTGTCAGAGAGGTTCCAAGTCAGAGAGGTTCCAT",
		AdapterEdist:            8,
		RelaxedAdapterEdist:     12,
		FlankEdist:              30,
		RelaxedFlankEdist:       40,
		EndFlank:                30,
		StartFlank:              30,
		EndTrim:                 10,
		PoreAdapterRange:        100,
		MiddleAdapterSearchSpan: 1000,
		Debug:                   false,
	}
}
