package githubhooks

import (
	"errors"
	"log"

	"gitfeed/internal/errmsg"
	"gitfeed/internal/eventstore"
	"gitfeed/internal/githubevents"
	"gitfeed/internal/models"
	"gitfeed/internal/utils"
	"gitfeed/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// eventHeader carries the GitHub event type tag for each delivery.
const eventHeader = "X-GitHub-Event"

// githubHandler normalizes and persists one GitHub webhook delivery.
//
// Unsupported event types are acknowledged with 200 and never stored; that
// is GitHub's retry contract, an error response would just make it redeliver
// something we intentionally ignore.
//
// @Summary Ingest GitHub webhook
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-GitHub-Event header string true "GitHub event type tag"
// @Success 200 {object} storedResponse
// @Failure 400 {object} errmsg._WebhookInvalidPayload
// @Failure 500 {object} errmsg._InternalServerError
// @Router /webhook/github [post]
func githubHandler(hub *ws.Hub) fiber.Handler {
	return func(c fiber.Ctx) error {
		payload := c.Body()
		if len(payload) == 0 {
			return utils.StatusError(c, errmsg.WebhookEmptyPayload)
		}

		eventType := c.Get(eventHeader)

		event, err := githubevents.Normalize(eventType, payload)
		if errors.Is(err, githubevents.ErrUnsupportedEvent) {
			// Silent ignore, acknowledged as success so GitHub stops retrying.
			return c.JSON(fiber.Map{
				"message": "event type not supported or ignored",
			})
		}
		if err != nil {
			log.Printf("githubhooks: failed to normalize %q delivery: %v", eventType, err)
			return utils.StatusError(c, errmsg.WebhookInvalidPayload)
		}

		// Defensive re-check; the classifier only emits supported actions.
		if !models.IsSupportedAction(event.Action) {
			return utils.StatusError(c, errmsg.WebhookInvalidAction)
		}

		if err := eventstore.Insert(event); err != nil {
			log.Printf("githubhooks: failed to store event: %v", err)
			return utils.StatusError(c, errmsg.InternalServerError(err))
		}

		if hub != nil {
			hub.Broadcast(event)
		}

		return c.JSON(storedResponse{
			Message: "event stored successfully",
			Event:   event,
		})
	}
}

// storedResponse is the success body returned after persisting an event.
type storedResponse struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
}
