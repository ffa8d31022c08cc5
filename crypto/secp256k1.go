package crypto

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PubKeyLen is the length of an uncompressed secp256k1 public key with the
// leading 0x04 prefix stripped: X(32) || Y(32).
const PubKeyLen = 64

// SigLen is the length of a fixed r||s ECDSA signature over secp256k1.
const SigLen = 64

// ErrInvalidSignature is returned by Verify (never) and is exported so
// callers can fold signature failures into a single rejection condition,
// per spec.md §4.2: "Any decode error, length mismatch, or verification
// failure yields a single boolean invalid".
var ErrInvalidSignature = errors.New("crypto: invalid signature")

// KeyPair is a secp256k1 keypair. PublicKey is the 64-byte uncompressed
// X||Y encoding used on the wire.
type KeyPair struct {
	Private   *btcec.PrivateKey
	PublicKey []byte
}

// GenerateKeyPair produces a uniformly random secp256k1 keypair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, PublicKey: SerializePublicKey(priv.PubKey())}, nil
}

// SerializePublicKey returns the 64-byte X||Y uncompressed encoding of pub
// (the SEC1 0x04 prefix is dropped, per spec.md §4.2).
func SerializePublicKey(pub *btcec.PublicKey) []byte {
	uncompressed := pub.SerializeUncompressed() // 0x04 || X(32) || Y(32)
	out := make([]byte, PubKeyLen)
	copy(out, uncompressed[1:])
	return out
}

// ParsePublicKey reconstructs a public key from its 64-byte X||Y encoding.
func ParsePublicKey(b []byte) (*btcec.PublicKey, error) {
	if len(b) != PubKeyLen {
		return nil, errors.New("crypto: public key must be 64 bytes")
	}
	var x, y big.Int
	x.SetBytes(b[:32])
	y.SetBytes(b[32:])
	if !btcec.S256().IsOnCurve(&x, &y) {
		return nil, errors.New("crypto: public key point not on curve")
	}
	var fx, fy btcec.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	return btcec.NewPublicKey(&fx, &fy), nil
}

// Sign produces a fixed 64-byte r||s ECDSA signature of digest using priv.
func Sign(priv *btcec.PrivateKey, digest []byte) ([]byte, error) {
	ecdsaPriv := priv.ToECDSA()
	r, s, err := ecdsa.Sign(rand.Reader, ecdsaPriv, digest)
	if err != nil {
		return nil, err
	}
	sig := make([]byte, SigLen)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return sig, nil
}

// Verify checks a fixed 64-byte r||s signature of digest against pubKey
// (64-byte uncompressed X||Y). Any malformed input yields false, never an
// error — callers have no finer-grained diagnostic than "invalid"
// (spec.md §4.2).
func Verify(pubKey []byte, digest []byte, signature []byte) bool {
	if len(signature) != SigLen {
		return false
	}
	pub, err := ParsePublicKey(pubKey)
	if err != nil {
		return false
	}
	var r, s big.Int
	r.SetBytes(signature[:32])
	s.SetBytes(signature[32:])
	ecdsaPub := pub.ToECDSA()
	return ecdsa.Verify(ecdsaPub, digest, &r, &s)
}
