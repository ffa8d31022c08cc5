// Package crypto wraps the hash and signature primitives the ledger is
// built on: SHA-256, RIPEMD-160 and secp256k1 ECDSA.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address scheme
)

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Ripemd160 returns the RIPEMD-160 digest of data.
func Ripemd160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data) //nolint:errcheck // ripemd160.Write never errors
	return h.Sum(nil)
}

// Hash160 is RIPEMD160(SHA256(data)) — the address derivation used
// throughout the ledger: RIPEMD160(SHA256(uncompressed public key)).
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}
