// Package ws is a minimal broadcast hub over coder/websocket. Each
// connection gets a session ID so the server layer can log and address
// clients individually.
package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

const writeTimeout = 3 * time.Second

type Hub struct {
	mu       sync.Mutex
	sessions map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[*websocket.Conn]string)}
}

// Add registers a connection and returns its session ID.
func (h *Hub) Add(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[conn] = id
	h.mu.Unlock()
	return id
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.sessions, conn)
	h.mu.Unlock()
}

// SessionID returns the ID assigned to a connection, if registered.
func (h *Hub) SessionID(conn *websocket.Conn) (string, bool) {
	h.mu.Lock()
	id, ok := h.sessions[conn]
	h.mu.Unlock()
	return id, ok
}

func (h *Hub) Count() int {
	h.mu.Lock()
	n := len(h.sessions)
	h.mu.Unlock()
	return n
}

// Broadcast sends a message to every client, dropping connections whose
// writes fail.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.sessions {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.sessions, conn)
		}
	}
	h.mu.Unlock()
}

// Send writes a message to a single connection.
func (h *Hub) Send(conn *websocket.Conn, message []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message)
}
