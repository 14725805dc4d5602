package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/misterclayt0n/regimen/internal/tracker"
)

const (
	pingPeriod = 25 * time.Second
	writeWait  = 10 * time.Second
)

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex // One writer at a time per connection.
}

func (c *wsClient) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans tracker events out to every connected WebSocket client. It
// implements tracker.Feedback.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*wsClient]struct{}
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

// Clients reports how many connections are open.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends payload as JSON to every client. Clients that fail the
// write are dropped.
func (h *Hub) Broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("hub: encode broadcast: %v", err)
		return
	}

	h.mu.RLock()
	var failed []*wsClient
	for c := range h.clients {
		if err := c.write(msg); err != nil {
			failed = append(failed, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range failed {
		h.unregister(c)
	}
}

func (h *Hub) Notify(e tracker.Event) {
	h.Broadcast(e)
}

// serveWS upgrades the request and keeps the connection until the client
// goes away.
func (h *Hub) serveWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("hub: upgrade: %v", err)
		return
	}
	cl := &wsClient{conn: conn}
	h.register(cl)

	done := make(chan struct{})
	defer close(done)

	// Ping to keep connections alive through proxies.
	go func() {
		t := time.NewTicker(pingPeriod)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					h.unregister(cl)
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(cl)
			return
		}
	}
}
