package chain

import "errors"

// Named error kinds surfaced by the core (spec.md §7). Admission and
// mining errors are returned to callers; consensus/peer errors live in
// the consensus package and are never surfaced to a caller.
var (
	// ErrInvalidSignature is returned when a submitted transaction's
	// signature does not verify against its declared sender public key.
	ErrInvalidSignature = errors.New("chain: invalid signature")

	// ErrNothingToMine is returned by Mine when the pool has no pending
	// transactions.
	ErrNothingToMine = errors.New("chain: nothing to mine")

	// ErrAppendConflict is returned by Append when the candidate block's
	// previous_hash no longer matches the chain tip (a concurrent
	// replacement raced the proof-of-work search).
	ErrAppendConflict = errors.New("chain: append conflict, chain tip moved")

	// ErrInvalidChain is returned by ReplaceWith when the replacement
	// chain fails Validate, and by Append when a candidate's proof of work
	// is invalid. Validate itself reports only a bool.
	ErrInvalidChain = errors.New("chain: invalid chain")

	// ErrBlockNotFound names a failed block lookup. No function in this
	// repository returns it.
	ErrBlockNotFound = errors.New("chain: block not found")
)
