package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// registerNodesRequest mirrors POST /nodes/register's body.
type registerNodesRequest struct {
	Nodes []string `json:"nodes"`
}

// registerNodes handles POST /nodes/register (spec.md §6).
func (h *handler) registerNodes(c echo.Context) error {
	var req registerNodesRequest
	if err := c.Bind(&req); err != nil || req.Nodes == nil {
		return jsonError(c, http.StatusBadRequest, "Please supply a list of nodes")
	}

	for _, raw := range req.Nodes {
		if _, err := h.node.RegisterPeer(raw); err != nil {
			return jsonError(c, http.StatusBadRequest, "invalid peer url: "+raw)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "New nodes have been added",
		"total_nodes": h.node.Peers.List(),
	})
}

// listNodes handles GET /nodes (spec.md §6).
func (h *handler) listNodes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"nodes": h.node.Peers.List()})
}

// resolve handles GET /nodes/resolve (spec.md §6, §4.6).
func (h *handler) resolve(c echo.Context) error {
	replaced, err := h.node.Resolve(c.Request().Context())
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}

	message := "Our chain is authoritative"
	if replaced {
		message = "Our chain was replaced"
	}

	blocks := h.node.Chain.Blocks()
	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
		"length":  len(blocks),
		"chain":   blocks,
	})
}
