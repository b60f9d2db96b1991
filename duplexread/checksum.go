package duplexread

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

var checksumKey = make([]byte, highwayhash.Size)

// SignalChecksum fingerprints a raw-signal slice with HighwayHash, in the
// same style fusion/postprocess.go uses highwayhash to dedup output
// records. It exists to let debug assertions and tests confirm that a
// child's raw-signal slice is a genuine copy of the parent's — not an
// aliased view a later in-place write to the parent could corrupt.
func SignalChecksum(signal []int16) []byte {
	buf := make([]byte, 2*len(signal))
	for i, s := range signal {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	sum := highwayhash.Sum(buf, checksumKey)
	return sum[:]
}
