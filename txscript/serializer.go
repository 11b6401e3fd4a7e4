// 将 Chunk 序列编码回规范的脚本字节，是解析器的精确逆操作。

package txscript

// Bytes serializes s back to its canonical byte encoding. For any Script
// produced by Parse, Parse(s.Bytes()) is chunk-wise equal to s and
// s.Bytes() reproduces the original input byte-exact (§8 property 1),
// including any non-canonical push encoding the original bytes used.
func (s *Script) Bytes() []byte {
	w := newScriptWriter()
	for _, c := range s.chunks {
		w.writeByte(c.opcode)
		if !c.IsPush() {
			continue
		}
		switch c.opcode {
		case OP_0:
			// No length field and no payload bytes.
		case OP_PUSHDATA1:
			w.writeByte(byte(len(c.payload)))
			w.write(c.payload)
		case OP_PUSHDATA2:
			w.writeUint16LE(uint16(len(c.payload)))
			w.write(c.payload)
		case OP_PUSHDATA4:
			w.writeUint32LE(uint32(len(c.payload)))
			w.write(c.payload)
		default:
			// Direct push, 0x01..0x4b: the opcode value itself is the
			// length, no length field precedes the payload.
			w.write(c.payload)
		}
	}
	return w.bytes()
}
