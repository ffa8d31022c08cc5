// Package chain implements the block engine, chain validator, and ledger
// state: spec.md §4.4–§4.6's block/transaction data model, PoW search and
// append protocol, whole-chain validation, and balance replay.
package chain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// NetworkSender is the literal sender address of a coinbase/reward
// transaction (spec.md §3).
const NetworkSender = "NETWORK"

// GenesisSentinel is the sole, literal element of the genesis block's
// transaction list (spec.md §3). Validators treat it as an opaque
// sentinel, never as a transaction.
const GenesisSentinel = "Genesis Block"

// TxKind distinguishes the three shapes spec.md §3 allows in a block's
// transaction list: a signed transfer, a miner's coinbase reward, and the
// genesis sentinel. Modeled as a tagged variant per spec.md §9's design
// note, with a custom (de)serializer that preserves the flat on-wire
// shape instead of emitting a discriminator field.
type TxKind int

const (
	KindRegular TxKind = iota
	KindCoinbase
	KindGenesisSentinel
)

// Transaction is the on-wire transaction record (spec.md §3, §6). Which
// fields are meaningful depends on Kind:
//
//   - KindRegular: all fields set; SenderPubKey and Signature are hex.
//   - KindCoinbase: SenderAddress == NetworkSender; SenderPubKey and
//     Signature are empty.
//   - KindGenesisSentinel: only meaningful as the literal string
//     GenesisSentinel; all other fields are zero and ignored.
type Transaction struct {
	Kind             TxKind
	SenderAddress    string
	SenderPubKey     string // hex, 64 bytes decoded
	RecipientAddress string
	Amount           float64
	Timestamp        float64
	Signature        string // hex, 64 bytes decoded
}

// IsCoinbase reports whether tx is a miner reward transaction.
func (tx Transaction) IsCoinbase() bool {
	return tx.Kind == KindCoinbase
}

// IsGenesisSentinel reports whether tx is the genesis marker.
func (tx Transaction) IsGenesisSentinel() bool {
	return tx.Kind == KindGenesisSentinel
}

// wireTransaction mirrors the flat JSON object shape of a regular or
// coinbase transaction, matching the reference implementation's field
// names exactly so the wire format is interchangeable with other nodes.
type wireTransaction struct {
	SenderAddress    string  `json:"sender_address"`
	SenderPubKey     *string `json:"sender_pubkey"`
	RecipientAddress string  `json:"recipient_address"`
	Amount           float64 `json:"amount"`
	Timestamp        float64 `json:"timestamp"`
	Signature        *string `json:"signature"`
}

// MarshalJSON renders the genesis sentinel as a bare string and every
// other transaction as the flat wireTransaction object.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	if tx.Kind == KindGenesisSentinel {
		return json.Marshal(GenesisSentinel)
	}

	w := wireTransaction{
		SenderAddress:    tx.SenderAddress,
		RecipientAddress: tx.RecipientAddress,
		Amount:           tx.Amount,
		Timestamp:        tx.Timestamp,
	}
	if tx.Kind == KindRegular {
		w.SenderPubKey = &tx.SenderPubKey
		w.Signature = &tx.Signature
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts either a bare string (the genesis sentinel) or a
// flat transaction object, inferring KindCoinbase from sender_address.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != GenesisSentinel {
			return fmt.Errorf("chain: unexpected bare string transaction %q", asString)
		}
		*tx = Transaction{Kind: KindGenesisSentinel}
		return nil
	}

	var w wireTransaction
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := Transaction{
		SenderAddress:    w.SenderAddress,
		RecipientAddress: w.RecipientAddress,
		Amount:           w.Amount,
		Timestamp:        w.Timestamp,
	}
	if w.SenderAddress == NetworkSender {
		out.Kind = KindCoinbase
	} else {
		out.Kind = KindRegular
		if w.SenderPubKey != nil {
			out.SenderPubKey = *w.SenderPubKey
		}
		if w.Signature != nil {
			out.Signature = *w.Signature
		}
	}
	*tx = out
	return nil
}

// BlockRecord is the exchange format spec.md §6 names: "index, timestamp,
// previous_hash, hash, nonce, transactions". This is the ONLY block shape
// the chain package ever operates on — internally, on the wire, and when
// validating a peer-fetched chain — per spec.md §9's unification
// decision: "always operate on the on-wire record schema internally".
type BlockRecord struct {
	Index        int64         `json:"index"`
	Timestamp    float64       `json:"timestamp"`
	PreviousHash string        `json:"previous_hash"`
	Hash         string        `json:"hash"`
	Nonce        uint64        `json:"nonce"`
	Transactions []Transaction `json:"transactions"`
}

// ErrEmptyChain is returned by operations that need a chain tip and find
// none.
var ErrEmptyChain = errors.New("chain: chain is empty")
