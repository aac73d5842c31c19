package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RealtimeHub pushes dispatcher alerts to connected admin dashboards. Alerts
// are broadcast, not routed: every connected socket gets every alert.
type WSClient struct {
	Conn *websocket.Conn

	// gorilla/websocket allows at most one concurrent writer per connection;
	// broadcasts and keepalive pings share writeMu.
	writeMu sync.Mutex
}

func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
