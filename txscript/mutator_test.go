package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimumEncodingRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length   int
		wantOp   byte
		wantName string
	}{
		{1, OP_DATA_1, "OP_DATA_1"},
		{75, OP_DATA_75, "OP_DATA_75"},
		{76, OP_PUSHDATA1, "OP_PUSHDATA1"},
		{255, OP_PUSHDATA1, "OP_PUSHDATA1"},
		{256, OP_PUSHDATA2, "OP_PUSHDATA2"},
		{65535, OP_PUSHDATA2, "OP_PUSHDATA2"},
		{65536, OP_PUSHDATA4, "OP_PUSHDATA4"},
	}

	for _, tt := range tests {
		s := Empty()
		require.NoError(t, s.AppendPush(make([]byte, tt.length)))
		require.Equal(t, 1, s.Len())
		require.Equal(t, tt.wantOp, s.Chunks()[0].Opcode(), "length %d", tt.length)
	}
}

func TestAppendPushZeroLengthIsNoOp(t *testing.T) {
	t.Parallel()

	s := Empty()
	require.NoError(t, s.AppendPush(nil))
	require.Equal(t, 0, s.Len())
}

func TestAppendPushDoesNotRewriteSmallIntValues(t *testing.T) {
	t.Parallel()

	// A single byte carrying value 0x02 pushed via the mutator stays a
	// direct OP_DATA_1 push; it is not rewritten to OP_2.
	s := Empty()
	require.NoError(t, s.AppendPush([]byte{0x02}))
	require.Equal(t, byte(OP_DATA_1), s.Chunks()[0].Opcode())
	require.Equal(t, []byte{0x02}, s.Chunks()[0].Payload())
}

func TestAppendPolymorphicFacade(t *testing.T) {
	t.Parallel()

	s := Empty()
	require.NoError(t, s.Append("OP_DUP"))
	require.NoError(t, s.Append(OP_HASH160))
	require.NoError(t, s.Append([]byte{1, 2, 3}))

	chunk, err := NewOpcodeChunk(OP_CHECKSIG)
	require.NoError(t, err)
	require.NoError(t, s.Append(chunk))

	require.Equal(t, 4, s.Len())
	require.Equal(t, byte(OP_DUP), s.Chunks()[0].Opcode())
	require.Equal(t, byte(OP_HASH160), s.Chunks()[1].Opcode())
	require.Equal(t, byte(OP_DATA_3), s.Chunks()[2].Opcode())
	require.Equal(t, byte(OP_CHECKSIG), s.Chunks()[3].Opcode())
}

func TestAppendUnsupportedTypeFails(t *testing.T) {
	t.Parallel()

	s := Empty()
	err := s.Append(3.14)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrInvalidArgument))
}

func TestPrependPreservesOrder(t *testing.T) {
	t.Parallel()

	s := Empty()
	require.NoError(t, s.AppendOpcode(OP_CHECKSIG))
	require.NoError(t, s.Prepend("OP_DUP"))
	require.Equal(t, []byte{OP_DUP, OP_CHECKSIG}, []byte{s.Chunks()[0].Opcode(), s.Chunks()[1].Opcode()})
}

func TestRemoveCodeSeparators(t *testing.T) {
	t.Parallel()

	s := Empty()
	require.NoError(t, s.AppendOpcode(OP_DUP))
	require.NoError(t, s.AppendOpcode(OP_CODESEPARATOR))
	require.NoError(t, s.AppendOpcode(OP_HASH160))
	require.NoError(t, s.AppendOpcode(OP_CODESEPARATOR))

	stripped := s.RemoveCodeSeparators()
	require.Equal(t, 2, stripped.Len())
	require.Equal(t, byte(OP_DUP), stripped.Chunks()[0].Opcode())
	require.Equal(t, byte(OP_HASH160), stripped.Chunks()[1].Opcode())
}

func TestScriptEquals(t *testing.T) {
	t.Parallel()

	a := Empty()
	require.NoError(t, a.AppendPush([]byte{1, 2, 3}))
	b := Empty()
	require.NoError(t, b.AppendPush([]byte{1, 2, 3}))
	c := Empty()
	require.NoError(t, c.AppendPush([]byte{1, 2, 4}))

	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}
