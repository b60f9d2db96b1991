package duplexread

import (
	"testing"

	"github.com/esteinig/dorado/rangealg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveUUIDDeterministic(t *testing.T) {
	u1 := DeriveUUID("123e4567-e89b-12d3-a456-426614174000", "0-100")
	u2 := DeriveUUID("123e4567-e89b-12d3-a456-426614174000", "0-100")
	assert.Equal(t, u1, u2)
	assert.Len(t, u1, 36)
	assert.Equal(t, byte('4'), u1[14])
	assert.Contains(t, []byte{'8', '9', 'a', 'b'}, u1[19])
}

func TestDeriveUUIDDiffersByDesc(t *testing.T) {
	id := "123e4567-e89b-12d3-a456-426614174000"
	assert.NotEqual(t, DeriveUUID(id, "0-100"), DeriveUUID(id, "0-101"))
}

func TestTimestampRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2023-01-01T00:00:00.000+00:00",
		"2023-06-15T12:34:56.005+00:00",
		"2023-06-15T12:34:56.999+00:00",
	} {
		parsed, err := ParseTimestamp(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatTimestamp(parsed))
	}
}

func TestTimestampParseToleratesUnpadded(t *testing.T) {
	parsed, err := ParseTimestamp("2017-09-12T09:50:12.5+00:00")
	require.NoError(t, err)
	assert.Equal(t, "2017-09-12T09:50:12.005+00:00", FormatTimestamp(parsed))
}

func TestAdjustTimeMS(t *testing.T) {
	got, err := AdjustTimeMS("2023-01-01T00:00:00.000+00:00", 2000)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01T00:00:02.000+00:00", got)
}

func TestSubreadShiftsStartTime(t *testing.T) {
	parent := baseRead()
	parent.ModelStride = 1
	parent.SampleRate = 4000
	parent.Attributes.StartTime = "2023-01-01T00:00:00.000+00:00"
	parent.NumTrimmedSamples = 0
	parent.RawSignal = make([]int16, 8004)
	parent.Moves = make([]uint8, 8004)
	for i := 8000; i < 8004; i++ {
		parent.Moves[i] = 1
	}

	child := Subread(parent, rangealg.PosRange{First: 0, Second: uint64(len(parent.Seq))},
		rangealg.PosRange{First: 8000, Second: uint64(len(parent.RawSignal))})

	assert.Equal(t, "2023-01-01T00:00:02.000+00:00", child.Attributes.StartTime)
	assert.Equal(t, uint64(0), child.NumTrimmedSamples)
	assert.Equal(t, SentinelReadNumber, child.Attributes.ReadNumber)
}

func TestSubreadDerivesStableID(t *testing.T) {
	parent := baseRead()
	parent.ReadID = "r1"
	parent.ModelStride = 1
	parent.SampleRate = 4000
	parent.Attributes.StartTime = "2023-01-01T00:00:00.000+00:00"

	c1 := Subread(parent, rangealg.PosRange{First: 0, Second: 4}, rangealg.PosRange{First: 0, Second: 4})
	c2 := Subread(parent, rangealg.PosRange{First: 0, Second: 4}, rangealg.PosRange{First: 0, Second: 4})
	assert.Equal(t, c1.ReadID, c2.ReadID)
	assert.NotEqual(t, c1.ReadID, parent.ReadID)
}

func TestSubreadSlicesFields(t *testing.T) {
	parent := baseRead()
	parent.ModelStride = 2
	parent.SampleRate = 4000
	parent.Attributes.StartTime = "2023-01-01T00:00:00.000+00:00"
	parent.Seq = "ACGTACGT"
	parent.QString = "!!!!!!!!"
	parent.Moves = []uint8{1, 0, 1, 0, 1, 0, 1, 0}
	parent.RawSignal = make([]int16, 16)

	child := Subread(parent, rangealg.PosRange{First: 2, Second: 4}, rangealg.PosRange{First: 4, Second: 8})

	assert.Equal(t, "GT", child.Seq)
	assert.Equal(t, "!!", child.QString)
	assert.Equal(t, 4, len(child.RawSignal))
	assert.Equal(t, []uint8{1, 0}, child.Moves)
}

func TestSignalChecksumIsACopyNotAView(t *testing.T) {
	parent := baseRead()
	parent.ModelStride = 1
	parent.SampleRate = 4000
	parent.Attributes.StartTime = "2023-01-01T00:00:00.000+00:00"
	parent.RawSignal = []int16{1, 2, 3, 4}

	child := Subread(parent, rangealg.PosRange{First: 0, Second: uint64(len(parent.Seq))},
		rangealg.PosRange{First: 0, Second: uint64(len(parent.RawSignal))})

	before := SignalChecksum(child.RawSignal)
	parent.RawSignal[0] = 99
	after := SignalChecksum(child.RawSignal)
	assert.Equal(t, before, after)
}

func baseRead() *Read {
	return &Read{
		ReadID:      "r1",
		Seq:         "ACGT",
		QString:     "!!!!",
		Moves:       []uint8{1, 1, 1, 1},
		ModelStride: 1,
		RawSignal:   make([]int16, 4),
		SampleRate:  4000,
		Attributes: Attributes{
			StartTime: "2023-01-01T00:00:00.000+00:00",
		},
	}
}
