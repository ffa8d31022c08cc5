// Package httpapi is the thin external I/O adapter spec.md §6 names:
// echo-routed HTTP/JSON handlers over a node.Node. It owns request
// parsing and status codes only; every invariant lives in the core
// packages this wires together.
package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/golang-blockchain/powledger/node"
)

// New builds an echo.Echo with every route spec.md §6 lists, logging
// each request through n's logger.
func New(n *node.Node) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	if n.Log != nil {
		e.Use(echoLogger(n.Log))
	}

	h := &handler{node: n}
	e.GET("/wallet/new", h.newWallet)
	e.POST("/transaction/new", h.newTransaction)
	e.GET("/mine", h.mine)
	e.GET("/chain", h.chain)
	e.GET("/pending", h.pending)
	e.GET("/balance/:address", h.balance)
	e.POST("/nodes/register", h.registerNodes)
	e.GET("/nodes", h.listNodes)
	e.GET("/nodes/resolve", h.resolve)

	return e
}

type handler struct {
	node *node.Node
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"message": message})
}
