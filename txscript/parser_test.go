package txscript

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestParseSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	scripts := []string{
		"76a914" + "0000000000000000000000000000000000000000" + "88ac", // P2PKH
		"a914" + "1111111111111111111111111111111111111111" + "87",     // P2SH
		"6a0548656c6c6f", // OP_RETURN push "Hello"
		"",
		"4c050102030405",     // OP_PUSHDATA1, length 5
		"4d0401" + hex256(1), // OP_PUSHDATA2, length 260
		"5121" + hex33() + "52ae",
	}

	for _, hexScript := range scripts {
		hexScript := hexScript
		t.Run(hexScript, func(t *testing.T) {
			t.Parallel()
			b := mustHex(t, hexScript)
			s, err := Parse(b)
			require.NoError(t, err)
			require.Equal(t, b, s.Bytes())
		})
	}
}

// hex256 returns 260 filler bytes (0x00, 0x01, ...) as hex, a payload long
// enough to need OP_PUSHDATA2; its argument is ignored.
func hex256(n int) string {
	out := make([]byte, 0, 520)
	for i := 0; i < 260; i++ {
		out = append(out, byte(i))
	}
	return hex.EncodeToString(out)
}

func hex33() string {
	b := make([]byte, 33)
	for i := range b {
		b[i] = byte(i)
	}
	return hex.EncodeToString(b)
}

func TestParseTruncatedInputs(t *testing.T) {
	t.Parallel()

	cases := []string{
		"4c",       // OP_PUSHDATA1 with no length byte
		"4c05",     // OP_PUSHDATA1 declares 5, has 0
		"01",       // direct push of 1, no payload byte
		"4d0100",   // OP_PUSHDATA2 declares 1, has 0
		"4e010000", // OP_PUSHDATA4 truncated length bytes
	}

	for _, hexScript := range cases {
		hexScript := hexScript
		t.Run(hexScript, func(t *testing.T) {
			t.Parallel()
			b, err := hex.DecodeString(hexScript)
			require.NoError(t, err)
			_, err = Parse(b)
			require.Error(t, err)
			require.True(t, IsErrorCode(err, ErrTruncated))
		})
	}
}

// TestScenarioE6 is the concrete truncation scenario named in the
// testable-properties list: OP_PUSHDATA1 with no following length byte.
func TestScenarioE6(t *testing.T) {
	t.Parallel()

	_, err := Parse(mustHex(t, "4c"))
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrTruncated))
}

func TestParseEmitsEmptyPushForOP0(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte{OP_0})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Chunks()[0].IsPush())
	require.Equal(t, []byte{}, s.Chunks()[0].Payload())
}

func TestChunkInvariantsHoldAfterParse(t *testing.T) {
	t.Parallel()

	s, err := Parse(mustHex(t, "76a914"+"2222222222222222222222222222222222222222"+"88ac"))
	require.NoError(t, err)
	for _, c := range s.Chunks() {
		if !c.IsPush() {
			continue
		}
		switch {
		case c.Opcode() == OP_0:
			require.Empty(t, c.Payload())
		case c.Opcode() >= OP_DATA_1 && c.Opcode() <= OP_DATA_75:
			require.Equal(t, int(c.Opcode()-OP_DATA_1)+1, len(c.Payload()))
		case c.Opcode() == OP_PUSHDATA1:
			require.Less(t, len(c.Payload()), 1<<8)
		case c.Opcode() == OP_PUSHDATA2:
			require.Less(t, len(c.Payload()), 1<<16)
		}
	}
}
