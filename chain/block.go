package chain

import "sync"

// Store persists the accepted chain. Implementations live outside this
// package (see storage.BadgerStore); the chain package depends only on
// this interface so the ledger logic stays storage-agnostic.
type Store interface {
	// Append persists a single newly-accepted block.
	Append(b BlockRecord) error
	// Replace atomically overwrites the persisted chain, used when
	// consensus adopts a longer peer chain.
	Replace(blocks []BlockRecord) error
	// Load returns the persisted chain in index order, or an empty slice
	// if nothing has been persisted yet.
	Load() ([]BlockRecord, error)
}

// NewGenesisBlock builds the sentinel block every chain starts from
// (spec.md §3, scenario 1): index 0, previous_hash "0", nonce 0, and a
// transaction list containing only the genesis sentinel.
func NewGenesisBlock(timestamp float64) (BlockRecord, error) {
	b := BlockRecord{
		Index:        0,
		Timestamp:    timestamp,
		PreviousHash: "0",
		Nonce:        0,
		Transactions: []Transaction{{Kind: KindGenesisSentinel}},
	}
	hash, err := HashBlock(b)
	if err != nil {
		return BlockRecord{}, err
	}
	b.Hash = hash
	return b, nil
}

// Chain holds the accepted block sequence and guards it with a
// reader/writer lock (spec.md §5): reads (Blocks, Tip, balance replay)
// take the shared lock, Append and ReplaceWith take it exclusively.
type Chain struct {
	mu         sync.RWMutex
	difficulty int
	blocks     []BlockRecord
	store      Store
}

// NewChain loads a persisted chain from store, or creates and persists a
// fresh genesis block if store is empty or nil.
func NewChain(difficulty int, store Store, genesisTimestamp float64) (*Chain, error) {
	if store != nil {
		existing, err := store.Load()
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return &Chain{difficulty: difficulty, blocks: existing, store: store}, nil
		}
	}

	genesis, err := NewGenesisBlock(genesisTimestamp)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if err := store.Append(genesis); err != nil {
			return nil, err
		}
	}
	return &Chain{difficulty: difficulty, blocks: []BlockRecord{genesis}, store: store}, nil
}

// Difficulty returns the difficulty new blocks must satisfy.
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// Len returns the current chain length.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// Blocks returns a snapshot copy of the full chain, safe for the caller
// to retain or serialize without racing a concurrent Append/ReplaceWith.
func (c *Chain) Blocks() []BlockRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]BlockRecord, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Tip returns the last block, or ErrEmptyChain if the chain somehow has
// no blocks (never true after NewChain succeeds).
func (c *Chain) Tip() (BlockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.blocks) == 0 {
		return BlockRecord{}, ErrEmptyChain
	}
	return c.blocks[len(c.blocks)-1], nil
}

// NewCandidate builds the next block to mine (spec.md §4.4): index =
// current length, previous_hash = tip hash, nonce = 0, transactions =
// txs as given by the caller (the caller decides whether a coinbase
// reward transaction is included).
func (c *Chain) NewCandidate(txs []Transaction, timestamp float64) (BlockRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.blocks) == 0 {
		return BlockRecord{}, ErrEmptyChain
	}
	tip := c.blocks[len(c.blocks)-1]
	return BlockRecord{
		Index:        tip.Index + 1,
		Timestamp:    timestamp,
		PreviousHash: tip.Hash,
		Nonce:        0,
		Transactions: txs,
	}, nil
}

// Append adds candidate to the chain iff its previous_hash still matches
// the current tip and its proof-of-work is valid (spec.md §4.4's append
// guard). The tip check guards against a concurrent chain replacement
// racing a long-running PoW search.
func (c *Chain) Append(candidate BlockRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.blocks) == 0 {
		return ErrEmptyChain
	}
	tip := c.blocks[len(c.blocks)-1]
	if candidate.PreviousHash != tip.Hash {
		return ErrAppendConflict
	}
	if !IsValidProof(candidate, c.difficulty) {
		return ErrInvalidChain
	}

	if c.store != nil {
		if err := c.store.Append(candidate); err != nil {
			return err
		}
	}
	c.blocks = append(c.blocks, candidate)
	return nil
}

// ReplaceWith atomically swaps the chain for blocks, used when consensus
// adopts a strictly-longer valid peer chain (spec.md §3: "never
// truncated in place; on consensus replacement, the entire sequence is
// swapped atomically"). The caller is responsible for having already
// established blocks is strictly longer and valid; ReplaceWith itself
// only re-validates, it doesn't compare lengths.
func (c *Chain) ReplaceWith(blocks []BlockRecord) error {
	if !Validate(blocks, c.difficulty) {
		return ErrInvalidChain
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		if err := c.store.Replace(blocks); err != nil {
			return err
		}
	}
	out := make([]BlockRecord, len(blocks))
	copy(out, blocks)
	c.blocks = out
	return nil
}
