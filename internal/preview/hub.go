package preview

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadMessage is sent to every connected browser after the document
// changes.
type reloadMessage struct {
	Type    string `json:"type"` // "hello" or "reload"
	Version int    `json:"version"`
}

// Hub is a Surface backed by connected browsers. It keeps the latest
// document and tells every socket client to reload when it changes.
type Hub struct {
	logger zerolog.Logger

	mu      sync.Mutex
	doc     string
	version int
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{logger: logger, clients: make(map[*websocket.Conn]struct{})}
}

// Replace stores doc and notifies every client.
func (h *Hub) Replace(doc string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.doc = doc
	h.version++
	msg := reloadMessage{Type: "reload", Version: h.version}
	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug().Err(err).Msg("dropping preview client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
	return nil
}

// Document returns the latest document and its version. Version 0 means
// nothing has been rendered yet.
func (h *Hub) Document() (string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc, h.version
}

// Clients returns the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and keeps the socket registered until the
// browser goes away. The current version is sent right after connecting.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("preview websocket upgrade")
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	err = conn.WriteJSON(reloadMessage{Type: "hello", Version: h.version})
	h.mu.Unlock()
	if err != nil {
		h.drop(conn)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug().Err(err).Msg("preview websocket read")
			}
			h.drop(conn)
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}
