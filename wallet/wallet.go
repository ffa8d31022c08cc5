// Package wallet implements spec.md §4.2: keypair generation, address
// derivation, and transaction signing. Adapted from the teacher's
// wallet/wallet.go, replacing its P-256 + Base58-checksum address
// scheme with the spec's secp256k1 + plain 40-char hex address.
package wallet

import (
	"encoding/hex"

	"github.com/golang-blockchain/powledger/canon"
	"github.com/golang-blockchain/powledger/crypto"
)

// Wallet holds a secp256k1 keypair and the address derived from it.
type Wallet struct {
	keyPair *crypto.KeyPair
	Address string
}

// New generates a fresh keypair and derives its address.
func New() (*Wallet, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &Wallet{keyPair: kp, Address: DeriveAddress(kp.PublicKey)}, nil
}

// DeriveAddress computes the 40-char lowercase hex address for a
// 64-byte uncompressed public key (spec.md glossary: "Address").
func DeriveAddress(pubKey []byte) string {
	return hex.EncodeToString(crypto.Hash160(pubKey))
}

// PublicKeyHex returns the wallet's public key as 64-byte hex, the form
// transported on the wire (spec.md §3).
func (w *Wallet) PublicKeyHex() string {
	return hex.EncodeToString(w.keyPair.PublicKey)
}

// PrivateKeyHex returns the wallet's private scalar as 32-byte hex.
// Wallets are ephemeral and not persisted by the core (spec.md §3's
// lifecycle note); this exists so GET /wallet/new can hand the caller
// everything needed to use the wallet elsewhere.
func (w *Wallet) PrivateKeyHex() string {
	return hex.EncodeToString(w.keyPair.Private.Serialize())
}

// Sign builds the transaction signing preimage (spec.md §4.1) for a
// transfer from this wallet to recipient and signs it, returning the
// hex-encoded 64-byte (r||s) signature.
func (w *Wallet) Sign(recipient string, amount, timestamp float64) (string, error) {
	preimage, err := canon.TxPreimage(w.Address, recipient, amount, timestamp)
	if err != nil {
		return "", err
	}
	digest := crypto.Sha256(preimage)
	sig, err := crypto.Sign(w.keyPair.Private, digest)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}
