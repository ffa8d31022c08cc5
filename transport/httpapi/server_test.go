package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang-blockchain/powledger/chain"
	"github.com/golang-blockchain/powledger/consensus"
	"github.com/golang-blockchain/powledger/node"
	"github.com/golang-blockchain/powledger/pool"
	"github.com/golang-blockchain/powledger/wallet"
)

func newTestServer(t *testing.T, difficulty int) (*node.Node, http.Handler) {
	t.Helper()
	c, err := chain.NewChain(difficulty, nil, 1700000000.0)
	require.NoError(t, err)
	n := node.New(c, pool.New(), consensus.NewPeerSet(), nil, nil, 1)
	n.Clock = func() float64 { return 1700000001.0 }
	return n, New(n)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewWalletReturnsKeys(t *testing.T) {
	_, h := newTestServer(t, 0)
	rec := doJSON(t, h, http.MethodGet, "/wallet/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out["address"], 40)
	require.Len(t, out["public_key"], 128)
}

func TestTransactionAndMineFlow(t *testing.T) {
	_, h := newTestServer(t, 1)
	alice, err := wallet.New()
	require.NoError(t, err)
	sig, err := alice.Sign("bob", 10, 1700000001.0)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/transaction/new", map[string]any{
		"sender_pubkey":     alice.PublicKeyHex(),
		"recipient_address": "bob",
		"amount":            10,
		"signature":         sig,
		"timestamp":         1700000001.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/mine?miner_address=minerhex", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/chain", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var chainResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chainResp))
	require.Equal(t, true, chainResp["valid"])
	require.Equal(t, float64(2), chainResp["length"])

	rec = doJSON(t, h, http.MethodGet, "/balance/bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var balResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balResp))
	require.Equal(t, float64(10), balResp["balance"])
}

func TestNewTransactionRejectsMissingTimestamp(t *testing.T) {
	_, h := newTestServer(t, 1)
	alice, err := wallet.New()
	require.NoError(t, err)
	sig, err := alice.Sign("bob", 10, 1700000001.0)
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/transaction/new", map[string]any{
		"sender_pubkey":     alice.PublicKeyHex(),
		"recipient_address": "bob",
		"amount":            10,
		"signature":         sig,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMineWithEmptyPoolReturns400(t *testing.T) {
	_, h := newTestServer(t, 0)
	rec := doJSON(t, h, http.MethodGet, "/mine", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterNodesRejectsBadShape(t *testing.T) {
	_, h := newTestServer(t, 0)
	rec := doJSON(t, h, http.MethodPost, "/nodes/register", map[string]any{"not_nodes": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterAndListNodes(t *testing.T) {
	_, h := newTestServer(t, 0)
	rec := doJSON(t, h, http.MethodPost, "/nodes/register", map[string]any{
		"nodes": []string{"http://peer-a:8000", "http://peer-a:8000/chain"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/nodes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out["nodes"], 1)
}

func TestResolveWithNoPeersIsAuthoritative(t *testing.T) {
	_, h := newTestServer(t, 0)
	rec := doJSON(t, h, http.MethodGet, "/nodes/resolve", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "Our chain is authoritative", out["message"])
}
