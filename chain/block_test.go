package chain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang-blockchain/powledger/wallet"
)

type memStore struct {
	blocks []BlockRecord
}

func (m *memStore) Append(b BlockRecord) error {
	m.blocks = append(m.blocks, b)
	return nil
}

func (m *memStore) Replace(blocks []BlockRecord) error {
	m.blocks = append([]BlockRecord(nil), blocks...)
	return nil
}

func (m *memStore) Load() ([]BlockRecord, error) {
	return m.blocks, nil
}

func mineCandidate(t *testing.T, c *Chain, txs []Transaction, timestamp float64) BlockRecord {
	t.Helper()
	candidate, err := c.NewCandidate(txs, timestamp)
	require.NoError(t, err)
	nonce, hash, err := SearchProof(candidate, c.Difficulty())
	require.NoError(t, err)
	candidate.Nonce = nonce
	candidate.Hash = hash
	return candidate
}

func TestNewChainCreatesGenesis(t *testing.T) {
	c, err := NewChain(0, nil, 1700000000.0)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	tip, err := c.Tip()
	require.NoError(t, err)
	require.Equal(t, int64(0), tip.Index)
	require.Equal(t, "0", tip.PreviousHash)
}

func TestNewChainLoadsFromStore(t *testing.T) {
	store := &memStore{}
	c1, err := NewChain(1, store, 1700000000.0)
	require.NoError(t, err)

	block := mineCandidate(t, c1, []Transaction{{Kind: KindGenesisSentinel}}, 1700000001.0)
	require.NoError(t, c1.Append(block))

	c2, err := NewChain(1, store, 1700000000.0)
	require.NoError(t, err)
	require.Equal(t, 2, c2.Len())
}

func TestAppendRejectsStalePreviousHash(t *testing.T) {
	c, err := NewChain(1, nil, 1700000000.0)
	require.NoError(t, err)

	stale := BlockRecord{Index: 1, PreviousHash: "not-the-tip", Timestamp: 1700000001.0}
	require.ErrorIs(t, c.Append(stale), ErrAppendConflict)
}

func TestAppendRejectsInvalidProof(t *testing.T) {
	c, err := NewChain(4, nil, 1700000000.0)
	require.NoError(t, err)

	tip, err := c.Tip()
	require.NoError(t, err)
	candidate := BlockRecord{Index: 1, PreviousHash: tip.Hash, Timestamp: 1700000001.0}
	hash, err := HashBlock(candidate)
	require.NoError(t, err)
	candidate.Hash = hash

	require.ErrorIs(t, c.Append(candidate), ErrInvalidChain)
}

func TestMineAndValidateScenario(t *testing.T) {
	alice, err := wallet.New()
	require.NoError(t, err)
	bob, err := wallet.New()
	require.NoError(t, err)
	miner, err := wallet.New()
	require.NoError(t, err)

	sig, err := alice.Sign(bob.Address, 10, 1700000001.0)
	require.NoError(t, err)

	tx := Transaction{
		Kind:             KindRegular,
		SenderAddress:    alice.Address,
		SenderPubKey:     alice.PublicKeyHex(),
		RecipientAddress: bob.Address,
		Amount:           10,
		Timestamp:        1700000001.0,
		Signature:        sig,
	}
	coinbase := Transaction{
		Kind:             KindCoinbase,
		SenderAddress:    NetworkSender,
		RecipientAddress: miner.Address,
		Amount:           1,
		Timestamp:        1700000001.0,
	}

	c, err := NewChain(2, nil, 1700000000.0)
	require.NoError(t, err)

	block := mineCandidate(t, c, []Transaction{tx, coinbase}, 1700000001.0)
	require.NoError(t, c.Append(block))

	require.Equal(t, 2, c.Len())
	require.Equal(t, "00", block.Hash[:2])
	require.True(t, Validate(c.Blocks(), 2))
}

func TestReplaceWithRejectsInvalidChain(t *testing.T) {
	c, err := NewChain(1, nil, 1700000000.0)
	require.NoError(t, err)

	bad := c.Blocks()
	bad = append(bad, BlockRecord{Index: 1, PreviousHash: "garbage"})
	require.ErrorIs(t, c.ReplaceWith(bad), ErrInvalidChain)
	require.Equal(t, 1, c.Len())
}
