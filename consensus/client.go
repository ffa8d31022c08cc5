package consensus

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-blockchain/powledger/chain"
)

// defaultPeerTimeout bounds every outbound peer request (spec.md §4.6:
// "bounded (~2s) peer fetches"), matching the reference's
// requests.get(f"{node}/nodes/resolve", timeout=2). Overridable per node
// via config.Config.PeerFetchTimeout (PEER_FETCH_TIMEOUT).
const defaultPeerTimeout = 2 * time.Second

// PeerClient is the outbound half of peer reconciliation: fetching a
// peer's chain and, best-effort, nudging it to resolve after a local
// mine succeeds.
type PeerClient interface {
	GetChain(ctx context.Context, peerBaseURL string) (chainResponse, error)
	NotifyResolve(ctx context.Context, peerBaseURL string)
}

// chainResponse mirrors GET /chain's body (spec.md §6).
type chainResponse struct {
	Length int                 `json:"length"`
	Chain  []chain.BlockRecord `json:"chain"`
}

// HTTPClient is the default PeerClient, a thin wrapper over net/http with
// a bounded timeout per request.
type HTTPClient struct {
	httpClient *http.Client
}

// NewHTTPClient returns an HTTPClient with the spec's default peer
// timeout (2s).
func NewHTTPClient() *HTTPClient {
	return NewHTTPClientWithTimeout(defaultPeerTimeout)
}

// NewHTTPClientWithTimeout returns an HTTPClient bounded by timeout,
// falling back to the default when timeout is zero or negative.
func NewHTTPClientWithTimeout(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultPeerTimeout
	}
	return &HTTPClient{httpClient: &http.Client{Timeout: timeout}}
}

// GetChain fetches peerBaseURL + "/chain". Any transport error or
// non-200 status is returned to the caller, which (per spec.md §4.6)
// treats it as "skip this peer", never as fatal.
func (c *HTTPClient) GetChain(ctx context.Context, peerBaseURL string) (chainResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, peerBaseURL+"/chain", nil)
	if err != nil {
		return chainResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chainResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return chainResponse{}, errNonOKStatus(resp.StatusCode)
	}

	var out chainResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return chainResponse{}, err
	}
	return out, nil
}

// NotifyResolve pings peerBaseURL + "/nodes/resolve" and silently
// discards any error (spec.md §9: "peer notification after mining" is
// best-effort, never surfaced to the miner's caller).
func (c *HTTPClient) NotifyResolve(ctx context.Context, peerBaseURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, peerBaseURL+"/nodes/resolve", nil)
	if err != nil {
		return
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

type statusError int

func (e statusError) Error() string {
	return "consensus: unexpected peer status"
}

func errNonOKStatus(code int) error {
	return statusError(code)
}
