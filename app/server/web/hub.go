package web

import (
	"net/http"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/render"
)

const wsWriteTimeout = 5 * time.Second

// client is a websocket connection with a one-slot outbox drained by its own writer goroutine.
type client struct {
	id   string
	conn *websocket.Conn
	out  chan render.Chrome
	done chan struct{}
}

// push queues msg, replacing a pending one the writer has not picked up yet.
// Must be called with Hub.mu held, which keeps a single pusher and so never blocks.
func (c *client) push(msg render.Chrome) {
	select {
	case <-c.out:
	default:
	}
	c.out <- msg
}

// Hub pushes rendered themes to connected websocket clients. It is a render sink.
// Render never waits for the network, a slow client only misses intermediate themes.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
	last    render.Chrome
}

// NewHub makes a Hub that greets new clients with the light theme until the first render.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		clients:  make(map[string]*client),
		last:     render.ChromeFor(enum.ThemeLight),
	}
}

// Render implements render.Sink, queuing the chrome of t for every client.
func (h *Hub) Render(t enum.Theme) {
	msg := render.ChromeFor(t)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = msg
	for _, c := range h.clients {
		c.push(msg)
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a websocket, sends the current chrome and keeps the
// connection registered until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] websocket upgrade failed, %v", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, out: make(chan render.Chrome, 1), done: make(chan struct{})}
	h.mu.Lock()
	h.clients[c.id] = c
	c.push(h.last) // queued under the lock, so a concurrent Render can only follow it
	h.mu.Unlock()
	log.Printf("[DEBUG] websocket client %s connected from %s", c.id, r.RemoteAddr)

	go h.write(c)

	// clients never send anything meaningful, reading only detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
}

// write sends queued chrome to c until it is removed or a write fails.
func (h *Hub) write(c *client) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				log.Printf("[DEBUG] dropping websocket client %s, %v", c.id, err)
				h.remove(c)
				return
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	h.mu.Unlock()
	if ok {
		close(c.done)
		_ = c.conn.Close()
		log.Printf("[DEBUG] websocket client %s disconnected", c.id)
	}
}
