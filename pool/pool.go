// Package pool implements the transaction pool (spec.md §4.3): an
// ordered, insertion-order-preserved list of admitted pending
// transactions, drained wholesale on a successful mine.
package pool

import (
	"encoding/hex"
	"sync"

	"github.com/golang-blockchain/powledger/canon"
	"github.com/golang-blockchain/powledger/chain"
	"github.com/golang-blockchain/powledger/crypto"
)

// Pool holds pending, admitted transactions. Admission does signature
// verification but no deduplication and no balance check (spec.md §4.3:
// "balances are derived only on query and are not consulted by
// consensus").
type Pool struct {
	mu  sync.Mutex
	txs []chain.Transaction
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Submit verifies the signature over the canonical signing preimage
// (spec.md §4.1, §4.2) and, if valid, appends a regular transaction to
// the pool. The sender address is derived from the public key, never
// taken from the caller (spec.md §9's open-question decision: "a client
// cannot claim a mismatched address").
func (p *Pool) Submit(senderPubKeyHex, recipientAddress string, amount, timestamp float64, signatureHex string) (chain.Transaction, error) {
	pubKey, err := hex.DecodeString(senderPubKeyHex)
	if err != nil || len(pubKey) != crypto.PubKeyLen {
		return chain.Transaction{}, chain.ErrInvalidSignature
	}

	senderAddress := hex.EncodeToString(crypto.Hash160(pubKey))

	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return chain.Transaction{}, chain.ErrInvalidSignature
	}

	preimage, err := canon.TxPreimage(senderAddress, recipientAddress, amount, timestamp)
	if err != nil {
		return chain.Transaction{}, err
	}
	digest := crypto.Sha256(preimage)
	if !crypto.Verify(pubKey, digest, sig) {
		return chain.Transaction{}, chain.ErrInvalidSignature
	}

	tx := chain.Transaction{
		Kind:             chain.KindRegular,
		SenderAddress:    senderAddress,
		SenderPubKey:     senderPubKeyHex,
		RecipientAddress: recipientAddress,
		Amount:           amount,
		Timestamp:        timestamp,
		Signature:        signatureHex,
	}

	p.mu.Lock()
	p.txs = append(p.txs, tx)
	p.mu.Unlock()
	return tx, nil
}

// Snapshot returns a copy of the pool's current contents in insertion
// order, for read-only endpoints (GET /pending).
func (p *Pool) Snapshot() []chain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]chain.Transaction, len(p.txs))
	copy(out, p.txs)
	return out
}

// Len reports the number of pending transactions.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.txs)
}

// Drain empties the pool and returns everything it held, in order
// (spec.md §4.4's append-success behavior: "the pool is cleared to
// empty").
func (p *Pool) Drain() []chain.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.txs
	p.txs = nil
	return out
}

// Restore puts txs back as the pool's entire contents, used when a mine
// attempt fails after draining (spec.md §4.4: "on failure, the pool is
// restored to its pre-mine state").
func (p *Pool) Restore(txs []chain.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txs = txs
}
