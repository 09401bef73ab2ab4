package value

import (
	"bytes"
	"encoding/hex"

	"github.com/google/uuid"
)

// Ulid is a 16-byte universally-unique, lexicographically-sortable
// identifier. coredb treats it as an opaque fixed-width byte array; the
// timestamp/randomness split of the ULID spec is the caller's concern, not
// the store's.
type Ulid [16]byte

// NewUlid copies 16 bytes into a Ulid.
func NewUlid(b [16]byte) Ulid { return Ulid(b) }

// NewRandomUlid generates a fresh Ulid from a random UUID's 16 bytes. It
// carries no embedded timestamp — callers that need lexicographic
// time-ordering should supply their own 16 bytes via NewUlid instead.
func NewRandomUlid() Ulid {
	return Ulid(uuid.New())
}

func cmpUlid(a, b Ulid) int {
	return bytes.Compare(a[:], b[:])
}

func (u Ulid) String() string {
	return hex.EncodeToString(u[:])
}
