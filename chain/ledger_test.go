package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceSkipsGenesisSentinel(t *testing.T) {
	genesis, err := NewGenesisBlock(1700000000.0)
	require.NoError(t, err)
	require.Equal(t, float64(0), Balance([]BlockRecord{genesis}, "anyone"))
}

func TestBalanceSumsReceivedMinusSent(t *testing.T) {
	genesis, err := NewGenesisBlock(1700000000.0)
	require.NoError(t, err)

	block1 := BlockRecord{
		Index: 1,
		Transactions: []Transaction{
			{Kind: KindRegular, SenderAddress: "alice", RecipientAddress: "bob", Amount: 10},
			{Kind: KindCoinbase, SenderAddress: NetworkSender, RecipientAddress: "miner", Amount: 1},
		},
	}
	block2 := BlockRecord{
		Index: 2,
		Transactions: []Transaction{
			{Kind: KindRegular, SenderAddress: "bob", RecipientAddress: "alice", Amount: 4},
		},
	}

	blocks := []BlockRecord{genesis, block1, block2}

	require.Equal(t, float64(-10+4), Balance(blocks, "alice"))
	require.Equal(t, float64(10-4), Balance(blocks, "bob"))
	require.Equal(t, float64(1), Balance(blocks, "miner"))
	require.Equal(t, float64(0), Balance(blocks, "nobody"))
}
