package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang-blockchain/powledger/crypto"
)

func TestNewDerivesAddressFromPublicKey(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	pub, err := hex.DecodeString(w.PublicKeyHex())
	require.NoError(t, err)
	require.Len(t, pub, crypto.PubKeyLen)
	require.Equal(t, DeriveAddress(pub), w.Address)
	require.Len(t, w.Address, 40)
}

func TestSignRoundTrips(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	sigHex, err := w.Sign("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", 10, 1700000001.0)
	require.NoError(t, err)

	sig, err := hex.DecodeString(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, crypto.SigLen)
}

func TestTwoWalletsHaveDistinctAddresses(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)
	require.NotEqual(t, a.Address, b.Address)
}
