package chain

import (
	"encoding/hex"

	"github.com/golang-blockchain/powledger/canon"
	"github.com/golang-blockchain/powledger/crypto"
)

// Validate walks blocks 1..n-1 checking I1-I3 and, for every contained
// transaction, I4/I5 (spec.md §4.5). Block 0 is required to be present
// but is not structurally re-validated beyond that — it's the chain's
// own genesis, trusted by construction or by a prior Validate call.
//
// Any failure anywhere is fatal for the whole chain: Validate returns
// false and the caller rejects the chain atomically, never partially.
func Validate(blocks []BlockRecord, difficulty int) bool {
	if len(blocks) == 0 {
		return false
	}

	for i := 1; i < len(blocks); i++ {
		cur := blocks[i]
		prev := blocks[i-1]

		if cur.PreviousHash != prev.Hash { // I1
			return false
		}

		recomputed, err := HashBlock(cur)
		if err != nil || recomputed != cur.Hash { // I2
			return false
		}

		if !hasDifficultyPrefix(cur.Hash, difficulty) { // I3
			return false
		}

		for _, tx := range cur.Transactions {
			if !validTransaction(tx) {
				return false
			}
		}
	}
	return true
}

// validTransaction implements the per-element rule spec.md §4.5
// describes: the genesis sentinel and coinbase transactions are
// accepted unconditionally (no signature to check, and — per §9's
// noted reference behavior — a sentinel appearing outside block 0 is
// treated as opaque rather than rejected), everything else must carry a
// valid signature (I4 address derivation, I5 signature check).
func validTransaction(tx Transaction) bool {
	switch tx.Kind {
	case KindGenesisSentinel, KindCoinbase:
		return true
	default:
		return validSignature(tx)
	}
}

// validSignature implements I4+I5: the sender address must be derivable
// from the declared public key, and the signature must verify against
// the signing preimage built from the transaction's own fields. Any
// decode error collapses to a single false, matching spec.md §4.2's
// "invalid, no further diagnostic" rule.
func validSignature(tx Transaction) bool {
	pubKey, err := hex.DecodeString(tx.SenderPubKey)
	if err != nil || len(pubKey) != crypto.PubKeyLen {
		return false
	}
	if hex.EncodeToString(crypto.Hash160(pubKey)) != tx.SenderAddress {
		return false
	}

	sig, err := hex.DecodeString(tx.Signature)
	if err != nil {
		return false
	}

	preimage, err := canon.TxPreimage(tx.SenderAddress, tx.RecipientAddress, tx.Amount, tx.Timestamp)
	if err != nil {
		return false
	}
	digest := crypto.Sha256(preimage)
	return crypto.Verify(pubKey, digest, sig)
}
