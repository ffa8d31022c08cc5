package chain

import (
	"encoding/json"

	"github.com/golang-blockchain/powledger/canon"
	"github.com/golang-blockchain/powledger/crypto"
)

// blockPreimage builds the canonical hash preimage for b (spec.md §4.1):
// the mapping {index, nonce, previous_hash, timestamp, transactions},
// with transactions carrying the exact on-wire shape of each entry
// (including the genesis sentinel's bare string form).
func blockPreimage(b BlockRecord) ([]byte, error) {
	txs := make([]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		raw, err := tx.MarshalJSON()
		if err != nil {
			return nil, err
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		txs[i] = decoded
	}
	return canon.BlockPreimage(b.Index, b.Nonce, b.PreviousHash, b.Timestamp, txs)
}

func sha256Sum(data []byte) []byte {
	return crypto.Sha256(data)
}
