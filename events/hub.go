package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Envelope is the wire shape of a broadcast event.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Hub fans domain events out to connected websocket clients. It satisfies
// services.Notifier.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Publish broadcasts an event to every connected client. Clients that fail
// to take the write are dropped.
func (h *Hub) Publish(event string, payload any) {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		log.Printf("events: marshal %s failed: %v", event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handler upgrades the request to a websocket and keeps the connection
// registered until the peer goes away.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}
