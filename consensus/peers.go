// Package consensus implements the peer registry and longest-valid-chain
// reconciliation procedure (spec.md §4.6), grounded on the reference's
// register_node/resolve_conflicts pair and on the pack's HTTP peer-manager
// idiom (certenIO-certen-validator's batch.HTTPPeerManager): a
// mutex-guarded peer set plus a bounded-timeout HTTP client.
package consensus

import (
	"fmt"
	"net/url"
	"sort"
	"sync"
)

// PeerSet is a set of peer base URLs, each canonicalized to
// scheme://host:port (spec.md §3). Membership is monotonic: there is no
// removal operation.
type PeerSet struct {
	mu    sync.RWMutex
	peers map[string]struct{}
}

// NewPeerSet returns an empty peer set.
func NewPeerSet() *PeerSet {
	return &PeerSet{peers: make(map[string]struct{})}
}

// Canonicalize reduces a peer URL to scheme://host:port, stripping path,
// query, and fragment (spec.md §3), matching the reference's
// urlparse(address) -> f"{scheme}://{netloc}".
func Canonicalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		// A bare "host:port" has no "//" authority: a numeric host fails
		// to parse, and a named host parses with the host as the scheme
		// and the port in u.Opaque, leaving u.Host empty; retry assuming
		// http.
		u2, err2 := url.Parse("http://" + raw)
		if err2 != nil || u2.Host == "" {
			return "", fmt.Errorf("consensus: invalid peer url %q", raw)
		}
		u = u2
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Register canonicalizes and adds a peer, returning the canonical form.
func (p *PeerSet) Register(raw string) (string, error) {
	canonical, err := Canonicalize(raw)
	if err != nil {
		return "", err
	}
	p.mu.Lock()
	p.peers[canonical] = struct{}{}
	p.mu.Unlock()
	return canonical, nil
}

// List returns all registered peers, sorted for deterministic output.
func (p *PeerSet) List() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.peers))
	for peer := range p.peers {
		out = append(out, peer)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of registered peers.
func (p *PeerSet) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.peers)
}
