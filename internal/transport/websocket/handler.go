package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connectfour/pkg/uid"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler upgrades spectator connections. Spectators only receive events.
type Handler struct {
	ConnManager *ConnectionManager
	Upgrader    websocket.Upgrader
}

// NewHandler accepts any origin when allowed is nil.
func NewHandler(cm *ConnectionManager, allowed func(origin string) bool) *Handler {
	return &Handler{
		ConnManager: cm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed == nil || allowed(origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	viewerID := uid.GenerateViewerID()
	h.ConnManager.AddConnection(viewerID, conn)
	log.Printf("[WS] Viewer %s connected", viewerID)

	if err := h.ConnManager.SendMessage(viewerID, h.ConnManager.Snapshot()); err != nil {
		log.Printf("[WS] Failed to send snapshot to %s: %v", viewerID, err)
		h.ConnManager.RemoveConnection(viewerID)
		return
	}

	h.handleConnection(viewerID, conn)
}

// handleConnection keeps the socket alive and discards anything the viewer sends.
func (h *Handler) handleConnection(viewerID string, conn *websocket.Conn) {
	defer func() {
		h.ConnManager.RemoveConnection(viewerID)
		log.Printf("[WS] Viewer %s disconnected", viewerID)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error from %s: %v", viewerID, err)
			}
			return
		}
	}
}
