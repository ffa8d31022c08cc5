package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenesisBlockSatisfiesOwnProof(t *testing.T) {
	genesis, err := NewGenesisBlock(1700000000.0)
	require.NoError(t, err)
	require.True(t, IsValidProof(genesis, 0))
}

func TestSearchProofProducesDifficultyPrefix(t *testing.T) {
	genesis, err := NewGenesisBlock(1700000000.0)
	require.NoError(t, err)

	candidate := BlockRecord{
		Index:        1,
		Timestamp:    1700000001.0,
		PreviousHash: genesis.Hash,
		Transactions: []Transaction{{Kind: KindGenesisSentinel}},
	}

	nonce, hash, err := SearchProof(candidate, 2)
	require.NoError(t, err)
	candidate.Nonce = nonce
	candidate.Hash = hash

	require.True(t, IsValidProof(candidate, 2))
	require.Equal(t, "00", hash[:2])
}

func TestIsValidProofRejectsTamperedHash(t *testing.T) {
	genesis, err := NewGenesisBlock(1700000000.0)
	require.NoError(t, err)
	runes := []rune(genesis.Hash)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	genesis.Hash = string(runes)
	require.False(t, IsValidProof(genesis, 0))
}

func TestHasDifficultyPrefix(t *testing.T) {
	require.True(t, hasDifficultyPrefix("0012ab", 2))
	require.False(t, hasDifficultyPrefix("0112ab", 2))
	require.True(t, hasDifficultyPrefix("abcdef", 0))
	require.False(t, hasDifficultyPrefix("0", 2))
}
