package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of active plan-feed websocket connections, keyed by
// user. A user may hold several connections at once (browser plus CLI).
type Manager struct {
	mu          sync.RWMutex
	connections map[string][]*websocket.Conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string][]*websocket.Conn)}
}

// Register adds a connection for the user.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[userID] = append(m.connections[userID], conn)
}

// Unregister removes and closes one connection of the user.
func (m *Manager) Unregister(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns := m.connections[userID]
	for i, c := range conns {
		if c == conn {
			_ = c.Close()
			m.connections[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(m.connections[userID]) == 0 {
		delete(m.connections, userID)
	}
}

// NotifyUser sends a text message to every connection of the user.
// Delivery is best-effort: broken connections are dropped, not retried.
func (m *Manager) NotifyUser(userID string, payload []byte) {
	m.mu.RLock()
	conns := append([]*websocket.Conn(nil), m.connections[userID]...)
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			m.Unregister(userID, conn)
		}
	}
}

// IsConnected returns whether the user has at least one live connection.
func (m *Manager) IsConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID]) > 0
}

// ConnectedUsers returns a copy of the currently connected user ids.
func (m *Manager) ConnectedUsers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
