// Package githubhooks exposes the handler that ingests GitHub webhook
// deliveries and turns them into stored feed events.
package githubhooks

import (
	"gitfeed/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Routes wires the GitHub webhook endpoint under /webhook/github. The hub
// receives every stored event for the live stream.
func Routes(app fiber.Router, hub *ws.Hub) {
	// POST /webhook/github ingests push and pull_request notifications.
	app.Post("/github", githubHandler(hub))
}
