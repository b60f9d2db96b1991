// Package duplexread holds the data model the split engine operates on: the
// basecalled Read, its ExtRead working-set wrapper, split-engine Settings,
// and the subread factory that derives children from a parent Read.
package duplexread

import "math"

// SentinelReadNumber marks a child's read_number as "unknown": a subread
// has no read_number of its own, since it was never itself the direct
// product of a pore capture event.
const SentinelReadNumber = math.MaxUint32

// Attributes is opaque, per-read metadata forwarded to children with two
// exceptions: ReadNumber is reset to SentinelReadNumber and StartTime is
// recomputed (see Subread).
type Attributes struct {
	ReadNumber     uint32
	StartTime      string // ISO-8601 with millisecond resolution, e.g. "2023-01-01T00:00:00.000+00:00"
	FastqFilename  string
	Extra          map[string]string // free-form passthrough metadata
}

// Read is one basecalled read: raw signal, move table, basecall sequence
// and qualities, and acquisition metadata. The move table and sequence
// must agree: the cumulative sum of Moves must equal len(Seq).
type Read struct {
	ReadID           string
	ParentReadID     string
	RawSignal        []int16
	SampleRate       uint64
	Scale, Shift     float32
	Seq              string
	QString          string
	Moves            []uint8
	ModelStride      int
	NumTrimmedSamples uint64
	Attributes       Attributes
}

// PA converts a raw signal sample to picoamps using the read's affine
// scaling: pA = Scale*raw + Shift.
func (r *Read) PA(raw int16) float32 {
	return r.Scale*float32(raw) + r.Shift
}

// Clone returns a field-for-field copy of r. Slices are copied (not
// aliased) so that children behave as if their signal/sequence storage
// were private; Subread then replaces the signal and move copies with
// fresh copies of just the child's own range of the parent.
func (r *Read) Clone() *Read {
	c := *r
	c.RawSignal = append([]int16(nil), r.RawSignal...)
	c.Moves = append([]uint8(nil), r.Moves...)
	if r.Attributes.Extra != nil {
		c.Attributes.Extra = make(map[string]string, len(r.Attributes.Extra))
		for k, v := range r.Attributes.Extra {
			c.Attributes.Extra[k] = v
		}
	}
	return &c
}
