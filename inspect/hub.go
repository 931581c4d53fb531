package inspect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/overworld/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub streams JSON snapshots to websocket clients. Clients that fall behind
// are dropped rather than slowing the publisher.
type Hub struct {
	// Every limits Publish to one message per Every frames. Zero publishes
	// every frame.
	Every uint64

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
	closed  bool
}

func NewHub(every uint64) *Hub {
	return &Hub{
		Every:   every,
		clients: map[*client]struct{}{},
	}
}

// Handler serves the hub at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("inspector upgrade failed")
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.Close()
		return
	}
	logger.Log.WithField("remote", r.RemoteAddr).Info("inspector connected")

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.send <- h.latest
	}
	return true
}

// unregister must be called with h.mu held.
func (h *Hub) unregister(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Publish sends v to every client when frame is due.
func (h *Hub) Publish(frame uint64, v any) error {
	if h == nil {
		return nil
	}
	if h.Every > 1 && frame%h.Every != 0 {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("inspect: marshal snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logger.Log.Debug("inspector client too slow, dropping")
			h.unregister(c)
		}
	}
	return nil
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.unregister(c)
	}
}

// readPump discards client messages and detects disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.mu.Lock()
		h.unregister(c)
		h.mu.Unlock()
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("inspector close failed")
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Warn("inspector read failed")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"remote": c.conn.RemoteAddr().String(),
				}).WithError(err).Debug("inspector write failed")
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
