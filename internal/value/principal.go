package value

import (
	"bytes"
	"fmt"
)

// MaxPrincipalLen is the largest byte length a Principal may hold, matching
// the host runtime's opaque identifier format (spec.md §3).
const MaxPrincipalLen = 29

// Principal is an opaque byte identifier supplied by the host runtime (a
// canister or user principal, in IC terms). coredb never interprets its
// contents; it only stores, compares, and hashes it.
type Principal struct {
	bytes []byte
}

// NewPrincipal validates length and copies b so the caller's slice can be
// reused or mutated afterward.
func NewPrincipal(b []byte) (Principal, error) {
	if len(b) > MaxPrincipalLen {
		return Principal{}, fmt.Errorf("value: principal length %d exceeds max %d", len(b), MaxPrincipalLen)
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Principal{bytes: cp}, nil
}

// Bytes returns the identifier's raw bytes. Callers must not mutate the
// returned slice.
func (p Principal) Bytes() []byte { return p.bytes }

func cmpPrincipal(a, b Principal) int {
	return bytes.Compare(a.bytes, b.bytes)
}

func (p Principal) String() string {
	return fmt.Sprintf("%x", p.bytes)
}
