// 提供对脚本字节流的顺序读取与写入原语。

package txscript

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/wire"
)

// byteReader sequences reads over a fixed byte buffer, tracking position
// exactly the way the parser needs to detect a mid-chunk truncation.
type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

// atEnd reports whether every byte has been consumed.
func (r *byteReader) atEnd() bool {
	return r.pos >= len(r.buf)
}

// readByte consumes and returns a single unsigned byte.
func (r *byteReader) readByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, scriptError(ErrTruncated, "unexpected end of script reading a byte")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readUint16LE consumes a 2-byte little-endian unsigned integer.
func (r *byteReader) readUint16LE() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// readUint32LE consumes a 4-byte little-endian unsigned integer.
func (r *byteReader) readUint32LE() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readVarInt consumes a Bitcoin compact-size varint (1/3/5/9-byte forms),
// delegating the wire format to the same decoder the reference node uses
// for every other compact-size field in a transaction.
func (r *byteReader) readVarInt() (uint64, error) {
	if r.atEnd() {
		return 0, scriptError(ErrTruncated, "unexpected end of script reading a varint")
	}
	v, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, scriptError(ErrTruncated, "unexpected end of script reading a varint")
	}
	return v, nil
}

// Read implements io.Reader so *byteReader can be handed directly to
// wire.ReadVarInt.
func (r *byteReader) Read(p []byte) (int, error) {
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	if n == 0 && len(p) > 0 {
		return 0, scriptError(ErrTruncated, "unexpected end of script")
	}
	return n, nil
}

// readN consumes and returns the next n raw bytes.
func (r *byteReader) readN(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, scriptError(ErrTruncated, "unexpected end of script reading payload")
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readNReversed consumes the next n raw bytes and returns them in reverse
// byte order, the form Bitcoin uses for a handful of legacy big-endian
// fields embedded in otherwise little-endian structures.
func (r *byteReader) readNReversed(n int) ([]byte, error) {
	b, err := r.readN(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i, v := range b {
		out[n-1-i] = v
	}
	return out, nil
}

// scriptWriter accumulates written bytes; writes never fail per §4.1.
type scriptWriter struct {
	buf []byte
}

func newScriptWriter() *scriptWriter {
	return &scriptWriter{buf: []byte{}}
}

func (w *scriptWriter) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *scriptWriter) writeUint16LE(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *scriptWriter) writeUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// writeVarInt appends v as a Bitcoin compact-size varint.
func (w *scriptWriter) writeVarInt(v uint64) {
	// wire.WriteVarInt only returns an error if the underlying io.Writer
	// does; *scriptWriter's Write never fails.
	_ = wire.WriteVarInt(w, 0, v)
}

// Write implements io.Writer so *scriptWriter can be handed directly to
// wire.WriteVarInt.
func (w *scriptWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *scriptWriter) write(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *scriptWriter) bytes() []byte {
	return w.buf
}
