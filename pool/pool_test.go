package pool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang-blockchain/powledger/chain"
	"github.com/golang-blockchain/powledger/wallet"
)

func TestSubmitAdmitsValidTransaction(t *testing.T) {
	alice, err := wallet.New()
	require.NoError(t, err)
	sig, err := alice.Sign("bob", 10, 1700000001.0)
	require.NoError(t, err)

	p := New()
	tx, err := p.Submit(alice.PublicKeyHex(), "bob", 10, 1700000001.0, sig)
	require.NoError(t, err)
	require.Equal(t, alice.Address, tx.SenderAddress)
	require.Equal(t, 1, p.Len())
	require.Equal(t, []chain.Transaction{tx}, p.Snapshot())
}

func TestSubmitRejectsBadSignature(t *testing.T) {
	alice, err := wallet.New()
	require.NoError(t, err)
	sig, err := alice.Sign("bob", 10, 1700000001.0)
	require.NoError(t, err)

	p := New()
	_, err = p.Submit(alice.PublicKeyHex(), "bob", 999, 1700000001.0, sig)
	require.ErrorIs(t, err, chain.ErrInvalidSignature)
	require.Equal(t, 0, p.Len())
}

func TestSubmitRejectsMalformedPublicKey(t *testing.T) {
	p := New()
	_, err := p.Submit("not-hex", "bob", 10, 1700000001.0, "00")
	require.ErrorIs(t, err, chain.ErrInvalidSignature)
}

func TestDrainEmptiesPoolInInsertionOrder(t *testing.T) {
	alice, err := wallet.New()
	require.NoError(t, err)
	p := New()

	for i := 0; i < 3; i++ {
		sig, err := alice.Sign("bob", float64(i), 1700000001.0+float64(i))
		require.NoError(t, err)
		_, err = p.Submit(alice.PublicKeyHex(), "bob", float64(i), 1700000001.0+float64(i), sig)
		require.NoError(t, err)
	}

	drained := p.Drain()
	require.Len(t, drained, 3)
	require.Equal(t, float64(0), drained[0].Amount)
	require.Equal(t, float64(2), drained[2].Amount)
	require.Equal(t, 0, p.Len())
}

func TestRestorePutsTransactionsBack(t *testing.T) {
	p := New()
	txs := []chain.Transaction{{Kind: chain.KindRegular, Amount: 5}}
	p.Restore(txs)
	require.Equal(t, 1, p.Len())
	require.Equal(t, txs, p.Snapshot())
}
