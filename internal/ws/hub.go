// Package ws streams ledger events to connected admin consoles, replacing
// the refresh-after-every-action pattern of the original site.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is one ledger change fanned out to subscribers.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}

type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) writeJSON(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(value)
}

func (c *client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
}

// Hub fans ledger events out to every connected admin client. Publishing
// never blocks the mutating request; a dead client is dropped on its first
// failed write.
type Hub struct {
	logger    *zap.Logger
	heartbeat time.Duration

	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub(logger *zap.Logger, heartbeat time.Duration) *Hub {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &Hub{
		logger:    logger,
		heartbeat: heartbeat,
		clients:   make(map[*client]struct{}),
	}
}

// Publish broadcasts one event to all subscribers.
func (h *Hub) Publish(eventType string, data any) {
	event := Event{Type: eventType, At: time.Now().UTC(), Data: data}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.writeJSON(event); err != nil {
			h.drop(c)
		}
	}
}

// ClientCount reports the number of connected consoles.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) drop(c *client) {
	_ = c.conn.Close()
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ServeAdmin upgrades the connection and keeps it registered until the
// peer goes away. Auth happens in middleware before this runs.
func (h *Hub) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	defer h.drop(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Drain the connection; admin consoles only listen, so the first
		// read error means the peer is gone.
		for {
			if _, _, err := c.conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}
