package splitfinder

import (
	"strings"
	"testing"

	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/rangealg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *duplexread.Settings {
	s := duplexread.DefaultSettings()
	s.Adapter = "GGTTC"
	s.AdapterEdist = 0
	s.RelaxedAdapterEdist = 1
	s.PoreThr = 80
	s.RelaxedPoreThr = 60
	s.PoreClDist = 2
	s.FlankEdist = 2
	s.RelaxedFlankEdist = 5
	s.EndFlank = 5
	s.StartFlank = 5
	s.EndTrim = 2
	s.PoreAdapterRange = 20
	s.MiddleAdapterSearchSpan = 20
	return &s
}

// allOnesRead builds a Read with model_stride 1 and a move vector of all
// 1s, so that sequence and signal coordinates coincide exactly -- this
// keeps the arithmetic in each test legible.
func allOnesRead(seq string, signal []float32) *duplexread.Read {
	moves := make([]uint8, len(seq))
	raw := make([]int16, len(signal))
	for i := range moves {
		moves[i] = 1
		raw[i] = int16(signal[i])
	}
	return &duplexread.Read{
		ReadID:      "r1",
		Seq:         seq,
		QString:     strings.Repeat("!", len(seq)),
		Moves:       moves,
		ModelStride: 1,
		RawSignal:   raw,
		SampleRate:  4000,
		Scale:       1,
		Shift:       0,
		Attributes: duplexread.Attributes{
			StartTime: "2023-01-01T00:00:00.000+00:00",
		},
	}
}

// placeAdapterPore writes adapter into seq at pos and raises the raw
// signal over the samples that the pore-region algorithm maps back to
// exactly [pos, pos+len(adapter)) in sequence coordinates (stride 1).
func placeAdapterPore(seq []byte, signal []float32, pos int, adapter string, highVal float32) {
	copy(seq[pos:], adapter)
	for i := pos; i < pos+len(adapter)-1; i++ {
		signal[i] = highVal
	}
}

// placePoreSignal raises the raw signal over [pos, pos+length-1), so that
// the pore-region algorithm maps it back to exactly [pos, pos+length) in
// sequence coordinates (stride 1), without writing any particular text at
// that position -- unlike placeAdapterPore, this lets a test put a pore
// region where no adapter match is nearby.
func placePoreSignal(signal []float32, pos, length int, highVal float32) {
	for i := pos; i < pos+length-1; i++ {
		signal[i] = highVal
	}
}

func TestSplitNoSplit(t *testing.T) {
	settings := testSettings()
	seq := strings.Repeat("ACGTACGTAC", 10) // no "GGTTC"-like substring, no pore signal
	read := allOnesRead(seq, make([]float32, len(seq)))

	out := Split(read, settings)
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ReadID)
	assert.Equal(t, "r1", out[0].ParentReadID)
	assert.Equal(t, seq, out[0].Seq)
}

func TestSplitSinglePoreAdapter(t *testing.T) {
	settings := testSettings()
	left := strings.Repeat("A", 50)
	right := strings.Repeat("C", 50)
	full := left + settings.Adapter + right

	seqBytes := []byte(full)
	signal := make([]float32, len(full))
	placeAdapterPore(seqBytes, signal, len(left), settings.Adapter, 100)

	read := allOnesRead(string(seqBytes), signal)
	out := Split(read, settings)

	require.Len(t, out, 2)
	assert.Equal(t, left, out[0].Seq)
	assert.Equal(t, right, out[1].Seq)
	assert.Equal(t, "r1", out[0].ParentReadID)
	assert.Equal(t, "r1", out[1].ParentReadID)
	assert.NotEqual(t, "r1", out[0].ReadID)
}

func TestSplitIterative(t *testing.T) {
	settings := testSettings()
	seg := strings.Repeat("C", 30)
	full := seg + settings.Adapter + seg + settings.Adapter + seg

	seqBytes := []byte(full)
	signal := make([]float32, len(full))
	placeAdapterPore(seqBytes, signal, 30, settings.Adapter, 100)
	placeAdapterPore(seqBytes, signal, 30+len(settings.Adapter)+30, settings.Adapter, 100)

	read := allOnesRead(string(seqBytes), signal)
	out := Split(read, settings)

	require.Len(t, out, 3)
	for _, sr := range out {
		assert.Equal(t, seg, sr.Seq)
		assert.Equal(t, "r1", sr.ParentReadID)
	}
}

func TestSplitAdapterMiddleFallback(t *testing.T) {
	settings := testSettings()
	settings.Adapter = "AAAAA"
	settings.AdapterEdist = 2
	settings.RelaxedAdapterEdist = 4

	seq := []byte(
		"ACGTA" + // 0-4: start flank; revcomp = TACGT
			"CCCCCCCCCC" + // 5-14: filler
			"GGG" + // 15-17: flank template, 3 mismatches vs revcomp(adapter)=TTTTT
			"CC" + // 18-19: filler
			"AAAAA" + // 20-24: adapter
			"CCCCCCCCCC" + // 25-34: filler
			"ACGTT", // 35-39: end flank; contains "ACG" matching revcomp(start flank)
	)
	require.Len(t, seq, 40)

	read := allOnesRead(string(seq), make([]float32, len(seq))) // flat signal: no pore regions anywhere

	out := Split(read, settings)
	require.Len(t, out, 2)
	assert.Equal(t, string(seq[:19]), out[0].Seq)
	assert.Equal(t, string(seq[20:]), out[1].Seq)
}

func TestSplitPoreFlankOnly(t *testing.T) {
	settings := testSettings()

	seq := []byte(
		"CCCCC" + // 0-4: left padding
			"AAA" + // 5-7: upstream flank template
			"CC" + // 8-9: end-trim buffer, skipped by the flank check
			"GGG" + // 10-12: pore region; no adapter text anywhere nearby
			"TTTAA" + // 13-17: downstream flank; revcomp("GGGTTTAA") = "TTAAACCC", which contains "AAA"
			strings.Repeat("C", 20), // 18-37: filler, kept free of adapter-like text
	)
	require.Len(t, seq, 38)

	signal := make([]float32, len(seq))
	placePoreSignal(signal, 10, 3, 100) // maps back to pore region [10,13)

	read := allOnesRead(string(seq), signal)
	out := Split(read, settings)

	// PORE_ADAPTER fails: no adapter within PoreAdapterRange of the pore
	// region. PORE_FLANK alone catches it on the reverse-complement match.
	require.Len(t, out, 2)
	assert.Equal(t, string(seq[:10]), out[0].Seq)
	assert.Equal(t, string(seq[13:]), out[1].Seq)
}

func TestSplitPoreAllOnly(t *testing.T) {
	settings := testSettings()

	seq := []byte(
		"CCCCC" + // 0-4: left padding
			"AAA" + // 5-7: upstream flank template
			"CC" + // 8-9: end-trim buffer
			"GGGGGGGG" + // 10-17: pore region + downstream flank, all G -- the
			// strict flank check (edit distance 3 against "AAA") fails, but
			// the relaxed one (threshold 5) passes
			"GGTTA" + // 18-22: one substitution away from the adapter -- fails
			// the exact adapter search, passes the relaxed one
			strings.Repeat("C", 100), // 23-122: filler long enough that later
		// strategies' own re-scans of the cut children never reach this text
	)
	require.Len(t, seq, 123)

	signal := make([]float32, len(seq))
	placePoreSignal(signal, 10, 3, 100) // maps back to pore region [10,13)

	read := allOnesRead(string(seq), signal)
	out := Split(read, settings)

	// Neither PORE_ADAPTER (exact adapter search) nor PORE_FLANK (strict
	// flank threshold) catches this; only PORE_ALL's relaxed thresholds,
	// applied together, do.
	require.Len(t, out, 2)
	assert.Equal(t, string(seq[:10]), out[0].Seq)
	assert.Equal(t, string(seq[13:]), out[1].Seq)
}

func TestSplitAdapterFlankOnly(t *testing.T) {
	settings := testSettings()
	settings.Adapter = "AAAAA"

	seq := []byte(
		strings.Repeat("C", 15) + // 0-14: left padding
			"TTT" + // 15-17: flank template; revcomp(adapter) = "TTTTT" contains it
			"CC" + // 18-19: end-trim buffer
			"AAAAA" + // 20-24: adapter, exact match
			strings.Repeat("C", 15), // 25-39: filler
	)
	require.Len(t, seq, 40)

	read := allOnesRead(string(seq), make([]float32, len(seq))) // flat signal: no pore regions anywhere

	out := Split(read, settings)

	// With no pore signal, PORE_ADAPTER/PORE_FLANK/PORE_ALL all find
	// nothing to filter; ADAPTER_FLANK finds the adapter by a full-sequence
	// search and confirms it with a zero-length-spacer flank match.
	require.Len(t, out, 2)
	assert.Equal(t, string(seq[:20]), out[0].Seq)
	assert.Equal(t, string(seq[25:]), out[1].Seq)
}

func TestSplitSimplexModeOnlyRunsPoreAdapter(t *testing.T) {
	settings := testSettings()
	settings.SimplexMode = true

	left := strings.Repeat("A", 50)
	right := strings.Repeat("C", 50)
	full := left + settings.Adapter + right
	seqBytes := []byte(full)
	signal := make([]float32, len(full))
	placeAdapterPore(seqBytes, signal, len(left), settings.Adapter, 100)

	read := allOnesRead(string(seqBytes), signal)

	fullSettings := testSettings()
	full1 := Split(read, fullSettings)
	simplexOut := Split(read, settings)

	assert.Equal(t, len(full1), len(simplexOut))
	for i := range full1 {
		assert.Equal(t, full1[i].Seq, simplexOut[i].Seq)
	}
}

func TestStrategiesOrderedSet(t *testing.T) {
	s := duplexread.DefaultSettings()
	assert.Equal(t, []Kind{PoreAdapter, PoreFlank, PoreAll, AdapterFlank, AdapterMiddle}, Strategies(&s))
	s.SimplexMode = true
	assert.Equal(t, []Kind{PoreAdapter}, Strategies(&s))
}

func TestCutCoverageLaw(t *testing.T) {
	settings := testSettings()
	left := strings.Repeat("A", 20)
	right := strings.Repeat("C", 20)
	full := left + settings.Adapter + right
	read := allOnesRead(full, make([]float32, len(full)))

	children := Cut(read, []rangealg.PosRange{{First: uint64(len(left)), Second: uint64(len(left) + len(settings.Adapter))}})
	var rebuilt string
	rebuilt += children[0].Seq + settings.Adapter + children[1].Seq
	assert.Equal(t, full, rebuilt)
}
