package canon

// TxPreimage builds the exact byte string signed and verified for a
// regular transaction (spec.md §4.1): the mapping
// {amount, recipient, sender, timestamp}, where sender is the sender's
// address, never its public key. Fields beyond these four are not part
// of the signed preimage.
func TxPreimage(sender, recipient string, amount float64, timestamp float64) ([]byte, error) {
	m := map[string]any{
		"amount":    amount,
		"recipient": recipient,
		"sender":    sender,
		"timestamp": timestamp,
	}
	return Encode(m)
}
