// 提供脚本的人类可读文本形式：渲染与解析。

package txscript

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// RenderText renders s as a space-separated sequence of tokens. A bare
// opcode renders as its canonical name if known, else "0x<hex>". A push
// via OP_PUSHDATA{1,2,4} renders as a triple "<opname> <len> 0x<hex>". A
// direct push (0x01..0x4b) renders as a pair "<len> 0x<hex>", with no
// opcode name, since the length alone determines the opcode.
func RenderText(s *Script) string {
	var tokens []string
	for _, c := range s.chunks {
		switch {
		case !c.IsPush():
			tokens = append(tokens, OpcodeName(c.opcode))
		case c.opcode == OP_0:
			tokens = append(tokens, OpcodeName(OP_0))
		case c.opcode >= OP_DATA_1 && c.opcode <= OP_DATA_75:
			tokens = append(tokens,
				strconv.Itoa(len(c.payload)),
				"0x"+hex.EncodeToString(c.payload))
		default: // OP_PUSHDATA1/2/4
			tokens = append(tokens,
				OpcodeName(c.opcode),
				strconv.Itoa(len(c.payload)),
				"0x"+hex.EncodeToString(c.payload))
		}
	}
	return strings.Join(tokens, " ")
}

// Disasm is a convenience wrapper that parses raw script bytes and renders
// them as text in a single call.
func Disasm(b []byte) (string, error) {
	s, err := Parse(b)
	if err != nil {
		return "", err
	}
	return RenderText(s), nil
}

// isHexString reports whether text consists entirely of hex digits and
// has even length, the condition §4.4 uses to route the whole input
// through the byte parser as a shortcut.
func isHexString(text string) bool {
	if text == "" || len(text)%2 != 0 {
		return false
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseText parses the human-readable text form produced by RenderText
// back into a Script. If text is pure hexadecimal it is decoded and routed
// through Parse directly (§8 property 4); otherwise it is tokenized on
// spaces per §4.4.
func ParseText(text string) (*Script, error) {
	trimmed := strings.TrimSpace(text)
	if isHexString(trimmed) {
		b, err := hex.DecodeString(trimmed)
		if err != nil {
			return nil, scriptError(ErrInvalidScript, "malformed hex script: "+err.Error())
		}
		return Parse(b)
	}

	var fields []string
	if trimmed != "" {
		fields = strings.Fields(trimmed)
	}

	var chunks []Chunk
	for i := 0; i < len(fields); i++ {
		tok := fields[i]

		if op, ok := OpcodeByName[strings.ToUpper(tok)]; ok {
			switch op {
			case OP_PUSHDATA1, OP_PUSHDATA2, OP_PUSHDATA4:
				if i+2 >= len(fields) {
					return nil, scriptError(ErrInvalidScript,
						fmt.Sprintf("%s requires a length and a payload token", tok))
				}
				n, err := strconv.Atoi(fields[i+1])
				if err != nil {
					return nil, scriptError(ErrInvalidScript,
						fmt.Sprintf("length token %q is not numeric", fields[i+1]))
				}
				payload, err := parseHexToken(fields[i+2])
				if err != nil {
					return nil, err
				}
				if len(payload) != n {
					return nil, scriptError(ErrInvalidScript,
						fmt.Sprintf("declared length %d does not match payload of %d bytes", n, len(payload)))
				}
				c, err := NewPushChunk(op, payload)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, c)
				i += 2
				continue
			case OP_0:
				// OP_0/OP_FALSE renders and parses as the bare token
				// "OP_0" (text.go's RenderText), but it is the
				// empty-payload push chunk, not a bare opcode — see
				// chunk.go's NewOpcodeChunk, which rejects the whole
				// push family including OP_0.
				c, err := NewPushChunk(OP_0, nil)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, c)
				continue
			default:
				c, err := NewOpcodeChunk(op)
				if err != nil {
					return nil, err
				}
				chunks = append(chunks, c)
				continue
			}
		}

		if n, err := strconv.Atoi(tok); err == nil {
			if n < 1 || n > int(OP_DATA_75) {
				return nil, scriptError(ErrInvalidScript,
					fmt.Sprintf("%d is not a valid direct-push length", n))
			}
			if i+1 >= len(fields) {
				return nil, scriptError(ErrInvalidScript, "direct push length with no payload token")
			}
			payload, err := parseHexToken(fields[i+1])
			if err != nil {
				return nil, err
			}
			if len(payload) != n {
				return nil, scriptError(ErrInvalidScript,
					fmt.Sprintf("declared length %d does not match payload of %d bytes", n, len(payload)))
			}
			c, err := NewPushChunk(byte(n), payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, c)
			i++
			continue
		}

		// A standalone "0x<hh>" token is a bare opcode with no canonical
		// name, the form RenderText emits for such opcodes.
		if len(tok) == 4 && strings.HasPrefix(tok, "0x") {
			if b, err := hex.DecodeString(tok[2:]); err == nil {
				if c, err := NewOpcodeChunk(b[0]); err == nil {
					chunks = append(chunks, c)
					continue
				}
			}
		}

		return nil, scriptError(ErrInvalidScript, fmt.Sprintf("unrecognized token %q", tok))
	}

	return NewScriptFromChunks(chunks), nil
}

func parseHexToken(tok string) ([]byte, error) {
	if !strings.HasPrefix(tok, "0x") {
		return nil, scriptError(ErrInvalidScript, fmt.Sprintf("payload token %q missing 0x prefix", tok))
	}
	b, err := hex.DecodeString(tok[2:])
	if err != nil {
		return nil, scriptError(ErrInvalidScript, fmt.Sprintf("payload token %q is not valid hex", tok))
	}
	return b, nil
}
