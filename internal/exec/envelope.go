package exec

import (
	"encoding/binary"
	"fmt"
)

// envelope is the DataValue record of spec.md §3: the serialized entity
// plus the created/modified bookkeeping the save executor maintains.
// It is framed by hand, the same length-prefixed fixed-and-variable-field
// layout internal/key uses for composite keys, since the host's own
// canonical entity codec (spec.md §6) is outside this module's scope and
// no pack library owns "small internal record framing".
type envelope struct {
	CreatedMs  uint64
	ModifiedMs uint64
	Bytes      []byte
}

func encodeEnvelope(e envelope) []byte {
	buf := make([]byte, 0, 8+8+4+len(e.Bytes))
	buf = binary.BigEndian.AppendUint64(buf, e.CreatedMs)
	buf = binary.BigEndian.AppendUint64(buf, e.ModifiedMs)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(e.Bytes)))
	buf = append(buf, e.Bytes...)
	return buf
}

func decodeEnvelope(buf []byte) (envelope, error) {
	if len(buf) < 20 {
		return envelope{}, fmt.Errorf("envelope too short: %d bytes", len(buf))
	}
	created := binary.BigEndian.Uint64(buf[0:8])
	modified := binary.BigEndian.Uint64(buf[8:16])
	n := binary.BigEndian.Uint32(buf[16:20])
	rest := buf[20:]
	if uint32(len(rest)) < n {
		return envelope{}, fmt.Errorf("envelope truncated: want %d bytes, have %d", n, len(rest))
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return envelope{CreatedMs: created, ModifiedMs: modified, Bytes: out}, nil
}
