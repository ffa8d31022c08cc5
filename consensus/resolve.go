package consensus

import (
	"context"

	"github.com/golang-blockchain/powledger/chain"
)

// Resolve implements the longest-valid-chain rule (spec.md §4.6,
// invariant I6): it fetches every registered peer's chain, and if any
// peer's chain is both strictly longer than the local chain and fully
// valid, the longest such chain replaces the local one atomically.
// Transport errors and non-200 responses are skipped, not fatal
// (matching the reference's resolve_conflicts). Reports whether the
// local chain was replaced.
func Resolve(ctx context.Context, peers *PeerSet, client PeerClient, local *chain.Chain) (bool, error) {
	maxLength := local.Len()
	var adopted []chain.BlockRecord

	for _, peer := range peers.List() {
		resp, err := client.GetChain(ctx, peer)
		if err != nil {
			continue
		}
		if resp.Length <= maxLength {
			continue
		}
		if !chain.Validate(resp.Chain, local.Difficulty()) {
			continue
		}
		maxLength = resp.Length
		adopted = resp.Chain
	}

	if adopted == nil {
		return false, nil
	}
	if err := local.ReplaceWith(adopted); err != nil {
		return false, err
	}
	return true, nil
}
