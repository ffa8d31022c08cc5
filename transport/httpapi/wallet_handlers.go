package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/golang-blockchain/powledger/wallet"
)

// newWallet handles GET /wallet/new (spec.md §6): generates a fresh
// keypair and returns it, unpersisted (wallets are ephemeral, spec.md
// §3's lifecycle note).
func (h *handler) newWallet(c echo.Context) error {
	w, err := wallet.New()
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "could not generate wallet")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"private_key": w.PrivateKeyHex(),
		"public_key":  w.PublicKeyHex(),
		"address":     w.Address,
	})
}
