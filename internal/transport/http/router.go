package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connectfour/internal/transport/http/middleware"
)

// NewRouter serves the read-only watch API and the spectator websocket.
func NewRouter(allowedOrigins []string, watch *WatchHandler, ws http.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/api/watch", watch.GetGame)
	router.GET("/api/watch/viewers", watch.GetViewers)
	router.GET("/ws", gin.WrapF(ws))

	return router
}
