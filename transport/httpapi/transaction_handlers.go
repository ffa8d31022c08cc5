package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/golang-blockchain/powledger/chain"
)

// newTransactionRequest mirrors the reference's required field set for
// POST /transaction/new: sender_pubkey, recipient_address, amount,
// signature, and timestamp are all mandatory. The reference never
// defaults a caller-omitted timestamp to time.time() on this route —
// that fallback only exists in the wallet-side convenience helper.
type newTransactionRequest struct {
	SenderPubKey     string   `json:"sender_pubkey"`
	RecipientAddress string   `json:"recipient_address"`
	Amount           *float64 `json:"amount"`
	Signature        string   `json:"signature"`
	Timestamp        *float64 `json:"timestamp"`
}

// newTransaction handles POST /transaction/new (spec.md §6, §4.3).
func (h *handler) newTransaction(c echo.Context) error {
	var req newTransactionRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, "malformed request body")
	}
	if req.SenderPubKey == "" || req.RecipientAddress == "" || req.Signature == "" ||
		req.Amount == nil || req.Timestamp == nil || *req.Timestamp == 0 {
		return jsonError(c, http.StatusBadRequest, "missing required fields")
	}

	_, err := h.node.SubmitTransaction(req.SenderPubKey, req.RecipientAddress, *req.Amount, *req.Timestamp, req.Signature)
	if err != nil {
		if errors.Is(err, chain.ErrInvalidSignature) {
			return jsonError(c, http.StatusBadRequest, "invalid signature")
		}
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Transaction added"})
}

// pending handles GET /pending (spec.md §6): the pool's current
// contents, in admission order.
func (h *handler) pending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.node.Pool.Snapshot())
}
