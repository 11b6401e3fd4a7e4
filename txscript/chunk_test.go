package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOpcodeChunkRejectsPushOpcodes(t *testing.T) {
	t.Parallel()

	for _, op := range []byte{OP_0, OP_DATA_1, OP_DATA_75, OP_PUSHDATA1, OP_PUSHDATA2, OP_PUSHDATA4} {
		_, err := NewOpcodeChunk(op)
		require.Error(t, err)
		require.True(t, IsErrorCode(err, ErrInvalidArgument))
	}
}

func TestNewPushChunkEnforcesLengthInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		op      byte
		payload []byte
		wantErr ErrorCode
	}{
		{"OP_DATA_5 exact", OP_DATA_5, make([]byte, 5), -1},
		{"OP_DATA_5 short", OP_DATA_5, make([]byte, 4), ErrInvalidArgument},
		{"OP_0 empty", OP_0, nil, -1},
		{"OP_0 nonempty", OP_0, []byte{1}, ErrInvalidArgument},
		{"OP_PUSHDATA1 max", OP_PUSHDATA1, make([]byte, 255), -1},
		{"OP_PUSHDATA1 over", OP_PUSHDATA1, make([]byte, 256), ErrPayloadTooLarge},
		{"OP_PUSHDATA2 max", OP_PUSHDATA2, make([]byte, 65535), -1},
		{"bare opcode rejected", OP_CHECKSIG, []byte{1}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPushChunk(tt.op, tt.payload)
			if tt.wantErr == -1 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, IsErrorCode(err, tt.wantErr))
		})
	}
}

func TestChunkEqual(t *testing.T) {
	t.Parallel()

	a, err := NewPushChunk(OP_DATA_3, []byte{1, 2, 3})
	require.NoError(t, err)
	b, err := NewPushChunk(OP_DATA_3, []byte{1, 2, 3})
	require.NoError(t, err)
	c, err := NewPushChunk(OP_DATA_3, []byte{1, 2, 4})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	bare1 := MustOpcodeChunk(OP_DUP)
	bare2 := MustOpcodeChunk(OP_DUP)
	require.True(t, bare1.Equal(bare2))
}

func TestChunkIsPush(t *testing.T) {
	t.Parallel()

	push, err := NewPushChunk(OP_DATA_1, []byte{0xaa})
	require.NoError(t, err)
	require.True(t, push.IsPush())

	zero, err := NewPushChunk(OP_0, nil)
	require.NoError(t, err)
	require.True(t, zero.IsPush())

	bare := MustOpcodeChunk(OP_CHECKSIG)
	require.False(t, bare.IsPush())
}
