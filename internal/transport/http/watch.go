package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connectfour/internal/domain"
)

// Spectators is what the watch routes read from.
type Spectators interface {
	Snapshot() domain.ServerMessage
	Count() int
}

type WatchHandler struct {
	Spectators Spectators
}

func NewWatchHandler(s Spectators) *WatchHandler {
	return &WatchHandler{Spectators: s}
}

type viewersResponse struct {
	Viewers int `json:"viewers"`
}

// GetGame returns the latest board, mode and status seen by the spectator feed.
func (h *WatchHandler) GetGame(c *gin.Context) {
	c.JSON(http.StatusOK, h.Spectators.Snapshot())
}

func (h *WatchHandler) GetViewers(c *gin.Context) {
	c.JSON(http.StatusOK, viewersResponse{Viewers: h.Spectators.Count()})
}
