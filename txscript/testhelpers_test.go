package txscript

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

// compressedTestPubKey returns a freshly generated, valid 33-byte
// compressed SEC-encoded public key for use as classifier/builder test
// fixtures; no corresponding private key material is retained.
func compressedTestPubKey(t *testing.T) []byte {
	t.Helper()
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	return priv.PubKey().SerializeCompressed()
}

// testPublicKey wraps raw SEC-encoded bytes as a PublicKey collaborator.
func testPublicKey(t *testing.T, b []byte) PublicKey {
	t.Helper()
	pk, err := ParsePublicKey(b)
	require.NoError(t, err)
	return pk
}
