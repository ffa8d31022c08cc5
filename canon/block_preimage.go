package canon

// BlockPreimage builds the exact byte string that is SHA-256'd to produce
// a block's hash (spec.md §4.1): the mapping
// {index, nonce, previous_hash, timestamp, transactions}, stored hash
// excluded. transactions must already be JSON-marshalable values (plain
// strings for the genesis sentinel, map[string]any for coinbase/regular
// transactions) in the order they appear in the block.
func BlockPreimage(index int64, nonce uint64, previousHash string, timestamp float64, transactions []any) ([]byte, error) {
	m := map[string]any{
		"index":         index,
		"nonce":         nonce,
		"previous_hash": previousHash,
		"timestamp":     timestamp,
		"transactions":  transactions,
	}
	return Encode(m)
}
