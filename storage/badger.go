// Package storage implements the durable block store behind chain.Store.
// Adapted from the teacher's blockchain/blockchain.go BadgerDB usage,
// repurposed away from UTXO key-value indexing to persisting the
// ordered chain.BlockRecord sequence spec.md §3 describes.
package storage

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/golang-blockchain/powledger/chain"
)

const blockKeyPrefix = "block-"

func blockKey(index int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", blockKeyPrefix, index))
}

// BadgerStore persists a chain.BlockRecord sequence in a BadgerDB
// directory, one gob-encoded record per block, keyed by zero-padded
// index so badger's natural key ordering is also block order.
type BadgerStore struct {
	db *badger.DB
}

// Open opens (creating if absent) the badger database at dir.
func Open(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := openDB(dir, opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Append persists a single block (chain.Store).
func (s *BadgerStore) Append(b chain.BlockRecord) error {
	data, err := encodeRecord(b)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blockKey(b.Index), data)
	})
}

// Replace atomically overwrites the persisted chain with blocks
// (chain.Store), used when consensus adopts a longer peer chain.
func (s *BadgerStore) Replace(blocks []chain.BlockRecord) error {
	return s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(blockKeyPrefix)
		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, b := range blocks {
			data, err := encodeRecord(b)
			if err != nil {
				return err
			}
			if err := txn.Set(blockKey(b.Index), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the persisted chain in index order, or an empty slice if
// nothing has been persisted yet (chain.Store).
func (s *BadgerStore) Load() ([]chain.BlockRecord, error) {
	var blocks []chain.BlockRecord
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(blockKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			b, err := decodeRecord(data)
			if err != nil {
				return err
			}
			blocks = append(blocks, b)
		}
		return nil
	})
	return blocks, err
}

func encodeRecord(b chain.BlockRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(data []byte) (chain.BlockRecord, error) {
	var b chain.BlockRecord
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&b)
	return b, err
}

// openDB retries once after clearing a stale LOCK file, matching the
// teacher's recovery path for a process that crashed without a clean
// shutdown.
func openDB(dir string, opts badger.Options) (*badger.DB, error) {
	db, err := badger.Open(opts)
	if err == nil {
		return db, nil
	}
	if !strings.Contains(err.Error(), "LOCK") {
		return nil, err
	}
	if rmErr := os.Remove(filepath.Join(dir, "LOCK")); rmErr != nil {
		return nil, err
	}
	return badger.Open(opts)
}
