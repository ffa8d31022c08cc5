package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/golang-blockchain/powledger/chain"
)

// mine handles GET /mine?miner_address=<hex> (spec.md §6, §4.4). The
// reference returns 400 for any "block is None" outcome regardless of
// cause, so every domain-level Mine failure (empty pool, a concurrent
// Resolve having moved the tip out from under the proof search) maps to
// 400; only a genuinely unexpected error is a 500.
func (h *handler) mine(c echo.Context) error {
	minerAddress := c.QueryParam("miner_address")

	block, err := h.node.Mine(minerAddress, h.node.RewardAmount)
	if err != nil {
		switch {
		case errors.Is(err, chain.ErrNothingToMine):
			return jsonError(c, http.StatusBadRequest, "nothing to mine")
		case errors.Is(err, chain.ErrAppendConflict), errors.Is(err, chain.ErrInvalidChain), errors.Is(err, chain.ErrEmptyChain):
			return jsonError(c, http.StatusBadRequest, "block is None")
		default:
			return jsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "New block mined",
		"index":         block.Index,
		"timestamp":     block.Timestamp,
		"previous_hash": block.PreviousHash,
		"hash":          block.Hash,
		"nonce":         block.Nonce,
		"transactions":  block.Transactions,
	})
}

// chain handles GET /chain (spec.md §6): the full block record sequence
// plus its own validity, so a peer can sanity-check before adopting it.
func (h *handler) chain(c echo.Context) error {
	blocks := h.node.Chain.Blocks()
	return c.JSON(http.StatusOK, echo.Map{
		"length": len(blocks),
		"chain":  blocks,
		"valid":  chain.Validate(blocks, h.node.Chain.Difficulty()),
	})
}

// balance handles GET /balance/:address (spec.md §6, §9's balance
// derivation).
func (h *handler) balance(c echo.Context) error {
	address := c.Param("address")
	return c.JSON(http.StatusOK, echo.Map{
		"address": address,
		"balance": h.node.Balance(address),
	})
}
