// 定义脚本中的最小单元：单个操作码或一次数据压栈。

package txscript

import "fmt"

// A Chunk is either a bare opcode (anything except the push-data family) or
// a push: an opcode drawn from {OP_0, OP_DATA_1..OP_DATA_75, OP_PUSHDATA1,
// OP_PUSHDATA2, OP_PUSHDATA4} together with the payload it pushes.
//
// Chunk retains the exact opcode used to encode a push, not just its
// payload, so that a Script parsed from non-canonical bytes (e.g. a 3-byte
// value pushed via OP_PUSHDATA1 instead of OP_DATA_3) serializes back to
// the identical bytes it was parsed from.
type Chunk struct {
	opcode  byte
	payload []byte
}

// Opcode returns the chunk's opcode byte.
func (c Chunk) Opcode() byte {
	return c.opcode
}

// IsPush reports whether the chunk represents a data push, i.e. whether it
// carries a payload (including the empty payload pushed by OP_0).
func (c Chunk) IsPush() bool {
	return c.opcode == OP_0 || isPushOpcode(c.opcode)
}

// Payload returns the chunk's pushed data. It is nil for a bare opcode
// chunk and a non-nil, possibly zero-length, slice for a push chunk.
func (c Chunk) Payload() []byte {
	return c.payload
}

// NewOpcodeChunk builds a bare opcode chunk. It rejects any opcode in the
// push-data family (OP_0, OP_DATA_1..75, OP_PUSHDATA1/2/4); those must be
// built with NewPushChunk so their payload invariant is always enforced.
func NewOpcodeChunk(op byte) (Chunk, error) {
	if op == OP_0 || isPushOpcode(op) {
		return Chunk{}, scriptError(ErrInvalidArgument,
			fmt.Sprintf("%s is a push opcode, not a bare opcode", OpcodeName(op)))
	}
	return Chunk{opcode: op}, nil
}

// MustOpcodeChunk is like NewOpcodeChunk but panics on error. It exists for
// internal call sites that pass a constant, known-bare opcode.
func MustOpcodeChunk(op byte) Chunk {
	c, err := NewOpcodeChunk(op)
	if err != nil {
		panic(err)
	}
	return c
}

// NewPushChunk builds a push chunk that pushes payload using exactly the
// given opcode. It validates that payload's length fits the capacity that
// opcode implies:
//
//	OP_0             -- payload must be empty
//	OP_DATA_1..75    -- payload length must equal opcode-OP_DATA_1+1
//	OP_PUSHDATA1     -- payload length must fit in a byte (<= 255)
//	OP_PUSHDATA2     -- payload length must fit in a uint16 (<= 65535)
//	OP_PUSHDATA4     -- payload length must fit in a uint32
//
// Any other opcode is rejected. Use this constructor directly only when the
// exact wire encoding matters (e.g. replaying a non-canonical parse); to
// build a push with the shortest valid encoding, use AppendPush instead.
func NewPushChunk(op byte, payload []byte) (Chunk, error) {
	if payload == nil {
		payload = []byte{}
	}
	switch {
	case op == OP_0:
		if len(payload) != 0 {
			return Chunk{}, scriptError(ErrInvalidArgument,
				"OP_0 must carry an empty payload")
		}
	case op >= OP_DATA_1 && op <= OP_DATA_75:
		want := int(op-OP_DATA_1) + 1
		if len(payload) != want {
			return Chunk{}, scriptError(ErrInvalidArgument,
				fmt.Sprintf("%s requires a payload of exactly %d bytes, got %d",
					OpcodeName(op), want, len(payload)))
		}
	case op == OP_PUSHDATA1:
		if len(payload) > 0xff {
			return Chunk{}, scriptError(ErrPayloadTooLarge,
				fmt.Sprintf("payload of %d bytes does not fit OP_PUSHDATA1", len(payload)))
		}
	case op == OP_PUSHDATA2:
		if len(payload) > 0xffff {
			return Chunk{}, scriptError(ErrPayloadTooLarge,
				fmt.Sprintf("payload of %d bytes does not fit OP_PUSHDATA2", len(payload)))
		}
	case op == OP_PUSHDATA4:
		if uint64(len(payload)) > 0xffffffff {
			return Chunk{}, scriptError(ErrPayloadTooLarge,
				fmt.Sprintf("payload of %d bytes does not fit OP_PUSHDATA4", len(payload)))
		}
	default:
		return Chunk{}, scriptError(ErrInvalidArgument,
			fmt.Sprintf("%s is not a push opcode", OpcodeName(op)))
	}
	return Chunk{opcode: op, payload: payload}, nil
}

// Equal reports whether c and other encode to the same bytes.
func (c Chunk) Equal(other Chunk) bool {
	if c.opcode != other.opcode {
		return false
	}
	if !c.IsPush() {
		return true
	}
	if len(c.payload) != len(other.payload) {
		return false
	}
	for i := range c.payload {
		if c.payload[i] != other.payload[i] {
			return false
		}
	}
	return true
}

// byteLen returns the number of bytes c occupies in a serialized script.
func (c Chunk) byteLen() int {
	if !c.IsPush() {
		return 1
	}
	switch {
	case c.opcode == OP_0 || (c.opcode >= OP_DATA_1 && c.opcode <= OP_DATA_75):
		return 1 + len(c.payload)
	case c.opcode == OP_PUSHDATA1:
		return 2 + len(c.payload)
	case c.opcode == OP_PUSHDATA2:
		return 3 + len(c.payload)
	default: // OP_PUSHDATA4
		return 5 + len(c.payload)
	}
}

// String is a debug representation, not the canonical text form produced
// by RenderText (which renders a whole Script, with direct pushes as
// "<len> 0x<hex>" and OP_PUSHDATAn pushes as "<opname> <len> 0x<hex>").
func (c Chunk) String() string {
	if !c.IsPush() {
		return OpcodeName(c.opcode)
	}
	return fmt.Sprintf("%s(%x)", OpcodeName(c.opcode), c.payload)
}
