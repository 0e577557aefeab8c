// Package feed serves accumulated events back to clients, either as a
// time-cursor polling list or as a live WebSocket stream.
package feed

import (
	"gitfeed/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Routes wires the polling and streaming endpoints under /webhook.
func Routes(app fiber.Router, hub *ws.Hub) {
	app.Get("/events", eventsHandler)
	app.Get("/stream", hub.Stream)
}
