package chain

// Balance derives address's balance by replaying blocks (spec.md §6,
// §9's no-UTXO non-goal): Σ(amounts received) − Σ(amounts sent),
// skipping the genesis sentinel entry. Negative balances are
// representable; nothing here guards against spending more than was
// received.
func Balance(blocks []BlockRecord, address string) float64 {
	var balance float64
	for _, b := range blocks {
		for _, tx := range b.Transactions {
			if tx.IsGenesisSentinel() {
				continue
			}
			if tx.SenderAddress == address {
				balance -= tx.Amount
			}
			if tx.RecipientAddress == address {
				balance += tx.Amount
			}
		}
	}
	return balance
}

// Balance derives c's current balance for address from a consistent
// snapshot of the chain.
func (c *Chain) Balance(address string) float64 {
	return Balance(c.Blocks(), address)
}
