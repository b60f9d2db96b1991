package duplexread

import (
	"crypto/sha256"
	"fmt"

	"github.com/google/uuid"
)

// DeriveUUID derives a stable, deterministic child identifier from a parent
// UUID string and a description (conventionally "{q0}-{q1}"): SHA-256 of
// their concatenation, truncated to 16 bytes, re-tagged as an RFC 4122 v4
// UUID (version nibble 0x4, variant 0b10xx), rendered in canonical
// 8-4-4-4-12 hex form. Pure and idempotent: the same inputs always produce
// the same UUID string.
func DeriveUUID(parentID, desc string) string {
	sum := sha256.Sum256(append([]byte(parentID), []byte(desc)...))

	var b [16]byte
	copy(b[:], sum[:16])
	b[6] = (b[6] & 0x0F) | 0x40
	b[8] = (b[8] & 0x3F) | 0x80

	// Round-tripped through google/uuid so the result is verified to be a
	// syntactically valid RFC 4122 v4 UUID, not merely hand-formatted hex.
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		// b is always exactly 16 bytes, so FromBytes cannot fail; a panic
		// here indicates a programmer error in the byte layout above.
		panic(fmt.Sprintf("duplexread: impossible uuid.FromBytes error: %v", err))
	}
	return id.String()
}
