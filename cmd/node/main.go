// Command node runs a single blockchain node: it opens (or creates) its
// badger-backed chain, wires the pool, peer set, and HTTP API together,
// and serves until a termination signal arrives.
//
// Grounded on the teacher's cli.go "startnode" path and network.go's
// CloseDB, adapted from raw-TCP P2P serving to an HTTP/JSON API behind
// echo, with the same vrecan/death graceful-shutdown idiom.
package main

import (
	"os"
	"syscall"

	"github.com/vrecan/death/v3"

	"github.com/golang-blockchain/powledger/chain"
	"github.com/golang-blockchain/powledger/consensus"
	"github.com/golang-blockchain/powledger/internal/config"
	"github.com/golang-blockchain/powledger/internal/logging"
	"github.com/golang-blockchain/powledger/node"
	"github.com/golang-blockchain/powledger/pool"
	"github.com/golang-blockchain/powledger/storage"
	"github.com/golang-blockchain/powledger/transport/httpapi"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Exit(exitWith(nil, "invalid configuration", err))
	}

	log := logging.New(cfg.LogLevel)

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		os.Exit(exitWith(log, "could not open block store", err))
	}

	ledger, err := chain.NewChain(cfg.Difficulty, store, node.UnixClock())
	if err != nil {
		os.Exit(exitWith(log, "could not initialize chain", err))
	}

	peers := consensus.NewPeerSet()
	for _, raw := range cfg.BootstrapPeers {
		canonical, err := peers.Register(raw)
		if err != nil {
			os.Exit(exitWith(log, "invalid bootstrap peer", err))
		}
		log.WithField("peer", canonical).Info("registered bootstrap peer")
	}

	n := node.New(ledger, pool.New(), peers, consensus.NewHTTPClientWithTimeout(cfg.PeerFetchTimeout), log, cfg.RewardAmount)

	go shutdownOnSignal(log, store)

	log.WithFields(map[string]any{
		"node_id":            cfg.NodeID,
		"listen":             cfg.ListenAddr,
		"difficulty":         cfg.Difficulty,
		"peer_fetch_timeout": cfg.PeerFetchTimeout,
		"bootstrap_peers":    len(cfg.BootstrapPeers),
	}).Info("starting node")

	e := httpapi.New(n)
	if err := e.Start(cfg.ListenAddr); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}

// shutdownOnSignal closes the block store once SIGINT/SIGTERM arrives,
// matching the teacher's CloseDB.
func shutdownOnSignal(log logFieldLogger, store *storage.BadgerStore) {
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	d.WaitForDeathWithFunc(func() {
		if log != nil {
			log.Info("shutting down")
		}
		_ = store.Close()
		os.Exit(0)
	})
}

// logFieldLogger is the subset of *logrus.Logger main.go needs, kept
// narrow so this file doesn't have to import logrus just to pass the
// logger through.
type logFieldLogger interface {
	Info(args ...any)
}

func exitWith(log logFieldLogger, message string, err error) int {
	if log != nil {
		log.Info(message + ": " + err.Error())
	} else {
		println(message+":", err.Error())
	}
	return 1
}
