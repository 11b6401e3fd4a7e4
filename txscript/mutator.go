// 提供就地修改脚本的变更器 API：追加、前置、移除代码分隔符、比较。
//
// §9 的设计说明要求把原本异构的 append/prepend 拆成一组类型化的入口点，
// 再由一个多态外观在它们之上调度，而不是让 append 本身分支处理各种类型。

package txscript

import "fmt"

// AppendOpcode appends op to s. OP_0 is not a bare opcode (it is the
// empty-payload push chunk per §3's data model and the OPEN QUESTION
// DECISIONS in SPEC_FULL.md), so it is special-cased to go through
// NewPushChunk rather than NewOpcodeChunk, which rejects the whole push
// family including OP_0.
func (s *Script) AppendOpcode(op byte) error {
	c, err := opcodeChunk(op)
	if err != nil {
		return err
	}
	s.chunks = append(s.chunks, c)
	return nil
}

// AppendPush appends payload to s as a push chunk, selecting the opcode by
// the minimum-encoding rule in §4.6: the shortest opcode capable of
// encoding len(payload). A zero-length payload is a no-op, per §4.6.
func (s *Script) AppendPush(payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	c, err := minimalPushChunk(payload)
	if err != nil {
		return err
	}
	s.chunks = append(s.chunks, c)
	return nil
}

// AppendChunk appends a prebuilt chunk to s as-is, bypassing the
// minimum-encoding rule. This is the entry point for replaying a
// non-canonical push exactly as parsed.
func (s *Script) AppendChunk(c Chunk) {
	s.chunks = append(s.chunks, c)
}

// Extend appends every chunk of other to s, in order.
func (s *Script) Extend(other *Script) {
	s.chunks = append(s.chunks, other.chunks...)
}

// PrependOpcode prepends op to s, with the same OP_0 handling as
// AppendOpcode.
func (s *Script) PrependOpcode(op byte) error {
	c, err := opcodeChunk(op)
	if err != nil {
		return err
	}
	s.chunks = append([]Chunk{c}, s.chunks...)
	return nil
}

// PrependPush prepends payload to s as a minimally-encoded push chunk. A
// zero-length payload is a no-op.
func (s *Script) PrependPush(payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	c, err := minimalPushChunk(payload)
	if err != nil {
		return err
	}
	s.chunks = append([]Chunk{c}, s.chunks...)
	return nil
}

// PrependChunk prepends a prebuilt chunk to s as-is.
func (s *Script) PrependChunk(c Chunk) {
	s.chunks = append([]Chunk{c}, s.chunks...)
}

// opcodeChunk builds the chunk for a caller-supplied opcode number, routing
// OP_0 to NewPushChunk (it is the empty-payload push chunk, not a bare
// opcode) and everything else to NewOpcodeChunk.
func opcodeChunk(op byte) (Chunk, error) {
	if op == OP_0 {
		return NewPushChunk(OP_0, nil)
	}
	return NewOpcodeChunk(op)
}

// minimalPushChunk builds the push chunk for payload using the §4.6
// minimum-encoding rule: direct-push opcode for 0 < L < 0x4c, then
// OP_PUSHDATA1/2/4 as L crosses each length field's capacity. A 1-byte
// payload whose value is a small integer is *not* rewritten to the
// OP_0/OP_1..OP_16 form; callers that want that form append the opcode
// directly via AppendOpcode.
func minimalPushChunk(payload []byte) (Chunk, error) {
	l := len(payload)
	switch {
	case l < int(OP_PUSHDATA1):
		return NewPushChunk(byte(l), payload)
	case l < 1<<8:
		return NewPushChunk(OP_PUSHDATA1, payload)
	case l < 1<<16:
		return NewPushChunk(OP_PUSHDATA2, payload)
	case uint64(l) < 1<<32:
		return NewPushChunk(OP_PUSHDATA4, payload)
	default:
		return Chunk{}, scriptError(ErrPayloadTooLarge,
			fmt.Sprintf("payload of %d bytes exceeds the largest push opcode's length field", l))
	}
}

// Append is the polymorphic facade §9 calls for: item may be an opcode
// number (byte or int), an opcode name (string), a raw payload ([]byte),
// or a prebuilt Chunk. It dispatches to the appropriate typed entry point
// above.
func (s *Script) Append(item interface{}) error {
	switch v := item.(type) {
	case Chunk:
		s.AppendChunk(v)
		return nil
	case byte:
		return s.AppendOpcode(v)
	case int:
		return s.AppendOpcode(byte(v))
	case string:
		op, ok := OpcodeByName[v]
		if !ok {
			return scriptError(ErrInvalidArgument, fmt.Sprintf("unknown opcode name %q", v))
		}
		return s.AppendOpcode(op)
	case []byte:
		return s.AppendPush(v)
	case *Script:
		s.Extend(v)
		return nil
	default:
		return scriptError(ErrInvalidArgument, fmt.Sprintf("unsupported append argument type %T", item))
	}
}

// Prepend is Append's mirror for the front of the script.
func (s *Script) Prepend(item interface{}) error {
	switch v := item.(type) {
	case Chunk:
		s.PrependChunk(v)
		return nil
	case byte:
		return s.PrependOpcode(v)
	case int:
		return s.PrependOpcode(byte(v))
	case string:
		op, ok := OpcodeByName[v]
		if !ok {
			return scriptError(ErrInvalidArgument, fmt.Sprintf("unknown opcode name %q", v))
		}
		return s.PrependOpcode(op)
	case []byte:
		return s.PrependPush(v)
	case *Script:
		s.chunks = append(append([]Chunk{}, v.chunks...), s.chunks...)
		return nil
	default:
		return scriptError(ErrInvalidArgument, fmt.Sprintf("unsupported prepend argument type %T", item))
	}
}

// RemoveCodeSeparators returns a new Script identical to s except that
// every OP_CODESEPARATOR chunk is removed; order of remaining chunks is
// preserved.
func (s *Script) RemoveCodeSeparators() *Script {
	out := make([]Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		if c.opcode == OP_CODESEPARATOR {
			continue
		}
		out = append(out, c)
	}
	return NewScriptFromChunks(out)
}
