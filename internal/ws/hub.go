package ws

import (
	"sync"

	"gitfeed/internal/models"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

// subscriberBuffer bounds the per-client queue; a subscriber that falls this
// far behind starts losing events rather than stalling ingestion.
const subscriberBuffer = 64

// Hub fans stored events out to connected websocket subscribers. Delivery is
// best effort; the polling feed remains the authoritative surface.
type Hub struct {
	mu   sync.Mutex
	subs map[chan models.Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan models.Event]struct{}),
	}
}

// Broadcast queues event on every subscriber without blocking the caller.
func (h *Hub) Broadcast(event models.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case sub <- event:
		default:
		}
	}
}

func (h *Hub) subscribe() chan models.Event {
	sub := make(chan models.Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) unsubscribe(sub chan models.Event) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Stream upgrades the request to a WebSocket and forwards broadcast events
// to the client until it disconnects.
func (h *Hub) Stream(c fiber.Ctx) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		sub := h.subscribe()
		defer h.unsubscribe(sub)

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		for {
			select {
			case event := <-sub:
				if err := WriteEvent(conn, event); err != nil {
					return
				}
			case <-closed:
				_ = WriteStatus(conn, "info", "event stream ended")
				return
			}
		}
	})
}
