// Package config collects the node's process-level knobs. Grounded on
// the teacher's cli.go, which reads NODE_ID from the environment and
// the rest from flags; here everything is env-driven so the same
// binary runs unmodified under a process manager or a container.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every value the core and its adapters need at startup.
type Config struct {
	// NodeID names this node's on-disk data directory, mirroring the
	// teacher's NODE_ID env var.
	NodeID string
	// ListenAddr is the HTTP bind address, e.g. ":5000" (NODE_HTTP_ADDR).
	ListenAddr string
	// DataDir is the badger database directory for this node.
	DataDir string
	// Difficulty is the constant PoW difficulty (spec.md: "no difficulty
	// adjustment").
	Difficulty int
	// RewardAmount is the coinbase amount minted per successful mine
	// (spec.md §4.4 default: 1, MINER_REWARD).
	RewardAmount float64
	// PeerFetchTimeout bounds every outbound peer request made during
	// consensus resolution (spec.md §4.6 default: 2s, PEER_FETCH_TIMEOUT
	// in seconds).
	PeerFetchTimeout time.Duration
	// BootstrapPeers are peer base URLs registered at startup, in
	// addition to whatever POST /nodes/register adds at runtime
	// (BOOTSTRAP_PEERS, comma-separated).
	BootstrapPeers []string
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string
}

// FromEnv reads configuration from the environment, applying the
// defaults a single-node local run needs.
func FromEnv() (Config, error) {
	cfg := Config{
		NodeID:           getEnv("NODE_ID", "3000"),
		ListenAddr:       getEnv("NODE_HTTP_ADDR", ":3000"),
		Difficulty:       3,
		RewardAmount:     1,
		PeerFetchTimeout: 2 * time.Second,
		BootstrapPeers:   parsePeerList(os.Getenv("BOOTSTRAP_PEERS")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
	cfg.DataDir = getEnv("DATA_DIR", fmt.Sprintf("./tmp/blocks_%s", cfg.NodeID))

	if v := os.Getenv("DIFFICULTY"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid DIFFICULTY %q: %w", v, err)
		}
		cfg.Difficulty = d
	}
	if v := os.Getenv("MINER_REWARD"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid MINER_REWARD %q: %w", v, err)
		}
		cfg.RewardAmount = r
	}
	if v := os.Getenv("PEER_FETCH_TIMEOUT"); v != "" {
		seconds, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PEER_FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.PeerFetchTimeout = time.Duration(seconds * float64(time.Second))
	}
	return cfg, nil
}

// parsePeerList splits a comma-separated BOOTSTRAP_PEERS value, dropping
// blank entries (a trailing comma or an unset/empty variable).
func parsePeerList(raw string) []string {
	if raw == "" {
		return nil
	}
	var peers []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			peers = append(peers, part)
		}
	}
	return peers
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
