package community

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks live websocket connections for the community feed, one per
// user; a reconnect displaces the previous socket.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}
	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

// Broadcast pushes a message to every connected user. Dead sockets are
// dropped along the way.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	ids := make([]int64, 0, len(h.connections))
	for id := range h.connections {
		ids = append(ids, id)
	}
	h.mutex.RUnlock()

	for _, id := range ids {
		h.SendToUser(id, message)
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
