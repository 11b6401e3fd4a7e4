// 将规范字节编码的脚本解析为有序的 Chunk 序列。

package txscript

// Parse decodes b into a Script, following the table in the component
// design: each opcode byte either stands alone (a bare chunk) or
// introduces a push whose length is encoded directly in the opcode (for
// 0x01..0x4b), or via an explicit 1/2/4-byte little-endian length field
// (for OP_PUSHDATA1/2/4). OP_0 emits a push chunk with an empty payload.
//
// Parse never validates opcode meaning, push minimality, or template
// conformance; it fails only with ErrTruncated, when a read runs past the
// end of b.
func Parse(b []byte) (*Script, error) {
	r := newByteReader(b)
	var chunks []Chunk

	for !r.atEnd() {
		op, err := r.readByte()
		if err != nil {
			return nil, err
		}

		switch {
		case op == OP_0:
			c, err := NewPushChunk(OP_0, nil)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)

		case op >= OP_DATA_1 && op <= OP_DATA_75:
			n := int(op-OP_DATA_1) + 1
			payload, err := r.readN(n)
			if err != nil {
				return nil, err
			}
			c, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)

		case op == OP_PUSHDATA1:
			n, err := r.readByte()
			if err != nil {
				return nil, err
			}
			payload, err := r.readN(int(n))
			if err != nil {
				return nil, err
			}
			c, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)

		case op == OP_PUSHDATA2:
			n, err := r.readUint16LE()
			if err != nil {
				return nil, err
			}
			payload, err := r.readN(int(n))
			if err != nil {
				return nil, err
			}
			c, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)

		case op == OP_PUSHDATA4:
			n, err := r.readUint32LE()
			if err != nil {
				return nil, err
			}
			payload, err := r.readN(int(n))
			if err != nil {
				return nil, err
			}
			c, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)

		default:
			c, err := NewOpcodeChunk(op)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)
		}
	}

	return NewScriptFromChunks(chunks), nil
}
