package wizard

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

const (
	EventQuote     = "quote"
	EventSubmitted = "submitted"
)

// QuoteEvent is pushed to a session's sockets after every mutating call, so
// the UI renders the derived total without polling. It is a one-way stream:
// the hub never accepts commands from the socket.
type QuoteEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Step      Step   `json:"step"`
	Total     int64  `json:"total"`
	Reference string `json:"reference,omitempty"`
}

type quoteConn struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
}

// Hub tracks the open quote sockets per session. A session usually has one
// listener (the visitor's tab) but nothing breaks with more.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*quoteConn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*quoteConn]bool)}
}

func (h *Hub) register(c *quoteConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[c.sessionID] == nil {
		h.conns[c.sessionID] = make(map[*quoteConn]bool)
	}
	h.conns[c.sessionID][c] = true
}

func (h *Hub) unregister(c *quoteConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[c.sessionID]; ok && set[c] {
		delete(set, c)
		close(c.send)
		if len(set) == 0 {
			delete(h.conns, c.sessionID)
		}
	}
}

// Broadcast sends the event to every socket watching the session.
func (h *Hub) Broadcast(sessionID string, event *QuoteEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns[sessionID] {
		select {
		case c.send <- data:
		default:
			// client too slow, drop the event
		}
	}
}

// ServeWS upgrades the request and streams quote events until the client
// disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &quoteConn{
		sessionID: sessionID,
		conn:      conn,
		send:      make(chan []byte, 16),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
	return nil
}

func (h *Hub) readPump(c *quoteConn) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// inbound frames are ignored; the stream is push-only
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *quoteConn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
