// Package node wires the chain, pool, and peer set into the operations
// spec.md §5 describes as sharing "a single logical mutex": admission is
// independent, but mining and consensus must not interleave with each
// other or they could both act on a stale chain tip.
package node

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/golang-blockchain/powledger/chain"
	"github.com/golang-blockchain/powledger/consensus"
	"github.com/golang-blockchain/powledger/pool"
)

// Clock abstracts wall-clock time so tests can supply a fixed value; in
// production it is time.Now's Unix seconds.
type Clock func() float64

// UnixClock is the production Clock.
func UnixClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// Node is the process's single instance of the consensus-and-ledger
// engine: one chain, one pool, one peer set, coordinated so a mine and a
// consensus resolution never race each other.
type Node struct {
	Chain  *chain.Chain
	Pool   *pool.Pool
	Peers  *consensus.PeerSet
	Client consensus.PeerClient
	Clock  Clock
	Log    *logrus.Logger

	// RewardAmount is the coinbase amount minted per successful mine
	// when a miner address is supplied (spec.md §4.4 default: 1).
	RewardAmount float64

	// writeMu serializes Mine and Resolve: both can mutate the chain tip,
	// and spec.md §4.4's append guard only protects against a stale
	// previous_hash, not against two miners draining the same pool.
	writeMu sync.Mutex
}

// New builds a Node from its already-constructed parts.
func New(c *chain.Chain, p *pool.Pool, peers *consensus.PeerSet, client consensus.PeerClient, log *logrus.Logger, rewardAmount float64) *Node {
	return &Node{Chain: c, Pool: p, Peers: peers, Client: client, Clock: UnixClock, Log: log, RewardAmount: rewardAmount}
}

// SubmitTransaction admits a transaction into the pool (spec.md §4.3).
func (n *Node) SubmitTransaction(senderPubKeyHex, recipientAddress string, amount, timestamp float64, signatureHex string) (chain.Transaction, error) {
	return n.Pool.Submit(senderPubKeyHex, recipientAddress, amount, timestamp, signatureHex)
}

// Mine drains the pool, optionally appends a coinbase reward, searches
// for a valid proof, and appends the result (spec.md §4.4). On any
// failure the pool's pre-mine contents are restored, minus the
// discarded coinbase.
func (n *Node) Mine(minerAddress string, rewardAmount float64) (chain.BlockRecord, error) {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()

	pending := n.Pool.Drain()
	if len(pending) == 0 {
		return chain.BlockRecord{}, chain.ErrNothingToMine
	}

	now := n.Clock()
	txs := pending
	if minerAddress != "" {
		txs = append(txs, chain.Transaction{
			Kind:             chain.KindCoinbase,
			SenderAddress:    chain.NetworkSender,
			RecipientAddress: minerAddress,
			Amount:           rewardAmount,
			Timestamp:        now,
		})
	}

	candidate, err := n.Chain.NewCandidate(txs, now)
	if err != nil {
		n.Pool.Restore(pending)
		return chain.BlockRecord{}, err
	}

	nonce, hash, err := chain.SearchProof(candidate, n.Chain.Difficulty())
	if err != nil {
		n.Pool.Restore(pending)
		return chain.BlockRecord{}, err
	}
	candidate.Nonce = nonce
	candidate.Hash = hash

	if err := n.Chain.Append(candidate); err != nil {
		n.Pool.Restore(pending)
		return chain.BlockRecord{}, err
	}

	n.notifyPeers()
	return candidate, nil
}

// notifyPeers tells every registered peer to resolve, discarding
// failures (spec.md §9: best-effort, never surfaced to Mine's caller).
func (n *Node) notifyPeers() {
	if n.Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, peer := range n.Peers.List() {
		n.Client.NotifyResolve(ctx, peer)
	}
}

// Resolve runs longest-valid-chain reconciliation against every
// registered peer (spec.md §4.6).
func (n *Node) Resolve(ctx context.Context) (bool, error) {
	n.writeMu.Lock()
	defer n.writeMu.Unlock()
	return consensus.Resolve(ctx, n.Peers, n.Client, n.Chain)
}

// Balance derives an address's balance from the current chain (spec.md
// §6).
func (n *Node) Balance(address string) float64 {
	return n.Chain.Balance(address)
}

// RegisterPeer canonicalizes and adds a peer.
func (n *Node) RegisterPeer(raw string) (string, error) {
	return n.Peers.Register(raw)
}
