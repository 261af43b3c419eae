package handler

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"pdf-summary-client/internal/domain"
)

const (
	eventBuffer  = 8
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 45 * time.Second
)

// ProgressEvent is pushed to browsers whenever the busy indicator or the
// result view changes.
type ProgressEvent struct {
	Busy  bool         `json:"busy"`
	Phase domain.Phase `json:"phase"`
}

// ProgressHub fans progress events out to websocket subscribers.
type ProgressHub struct {
	upgrader websocket.Upgrader
	logger   domain.Logger

	mu      sync.Mutex
	clients map[chan ProgressEvent]struct{}
	last    ProgressEvent
}

// NewProgressHub creates a hub accepting connections from the same host or
// from one of allowedOrigins.
func NewProgressHub(allowedOrigins []string, logger domain.Logger) *ProgressHub {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &ProgressHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed[origin] {
					return true
				}
				u, err := url.Parse(origin)
				return err == nil && u.Host == r.Host
			},
		},
		logger:  logger,
		clients: make(map[chan ProgressEvent]struct{}),
		last:    ProgressEvent{Phase: domain.PhaseIdle},
	}
}

// Publish delivers ev to every subscriber without blocking. A subscriber
// that has fallen behind loses its oldest pending event.
func (h *ProgressHub) Publish(ev ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = ev
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// Subscribers returns the number of connected clients.
func (h *ProgressHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *ProgressHub) subscribe() (chan ProgressEvent, ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan ProgressEvent, eventBuffer)
	h.clients[ch] = struct{}{}
	return ch, h.last
}

func (h *ProgressHub) unsubscribe(ch chan ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ch)
}

// ServeWS upgrades the request and streams progress events until the client goes away.
func (h *ProgressHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	events, current := h.subscribe()
	defer h.unsubscribe(events)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("Websocket closed", "error", err.Error())
				}
				return
			}
		}
	}()

	if err := h.write(conn, current); err != nil {
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case ev := <-events:
			if err := h.write(conn, ev); err != nil {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *ProgressHub) write(conn *websocket.Conn, ev ProgressEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(ev)
}
