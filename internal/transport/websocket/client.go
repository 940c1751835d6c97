package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connectfour/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager tracks spectator connections and the latest game state.
// It is an event.Sink, so a Forwarder feeds it from the engine.
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// writeMu ensures only one goroutine writes to a specific socket at a time.
	// conn.WriteJSON is not thread-safe.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // protects the maps themselves

	stateMu sync.RWMutex
	state   domain.ServerMessage
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
		state: domain.ServerMessage{
			Type:   domain.MsgSnapshot,
			Board:  domain.Board{}.Ints(),
			Status: domain.InProgress.String(),
		},
	}
}

func (cm *ConnectionManager) AddConnection(viewerID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[viewerID]; exists {
		oldConn.Close()
	}
	cm.connections[viewerID] = conn
	cm.writeMu[viewerID] = &sync.Mutex{}
}

func (cm *ConnectionManager) RemoveConnection(viewerID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[viewerID]; exists {
		conn.Close()
		delete(cm.connections, viewerID)
		delete(cm.writeMu, viewerID)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage writes one JSON message to a viewer.
func (cm *ConnectionManager) SendMessage(viewerID string, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[viewerID]
	mu, muExists := cm.writeMu[viewerID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // viewer left, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// BroadcastMessage sends message to every viewer. Viewers whose socket
// fails are dropped.
func (cm *ConnectionManager) BroadcastMessage(message domain.ServerMessage) {
	cm.mu.RLock()
	ids := make([]string, 0, len(cm.connections))
	for id := range cm.connections {
		ids = append(ids, id)
	}
	cm.mu.RUnlock()

	for _, id := range ids {
		if err := cm.SendMessage(id, message); err != nil {
			cm.RemoveConnection(id)
		}
	}
}

// Publish folds msg into the snapshot and broadcasts it.
func (cm *ConnectionManager) Publish(_ context.Context, msg domain.ServerMessage) error {
	cm.apply(msg)
	cm.BroadcastMessage(msg)
	return nil
}

// Snapshot is the latest known state, as sent to a viewer when it connects.
func (cm *ConnectionManager) Snapshot() domain.ServerMessage {
	cm.stateMu.RLock()
	defer cm.stateMu.RUnlock()

	snap := cm.state
	snap.Board = make([][]int, len(cm.state.Board))
	for r, row := range cm.state.Board {
		snap.Board[r] = append([]int(nil), row...)
	}
	return snap
}

func (cm *ConnectionManager) apply(msg domain.ServerMessage) {
	cm.stateMu.Lock()
	defer cm.stateMu.Unlock()

	if msg.GameID != "" {
		cm.state.GameID = msg.GameID
	}
	switch msg.Type {
	case domain.MsgGameStarted:
		cm.state.Mode = msg.Mode
		cm.state.Status = domain.InProgress.String()
		cm.state.Winner = 0
	case domain.MsgBoardUpdated:
		cm.state.Board = msg.Board
		cm.state.Player = msg.Player
		cm.state.Row = msg.Row
		cm.state.Column = msg.Column
	case domain.MsgGameOver:
		cm.state.Status = msg.Status
		cm.state.Winner = msg.Winner
	case domain.MsgBoardCleared:
		cm.state.Board = domain.Board{}.Ints()
		cm.state.Status = domain.InProgress.String()
		cm.state.Winner = 0
		cm.state.Player = 0
		cm.state.Row = nil
		cm.state.Column = nil
	}
}
