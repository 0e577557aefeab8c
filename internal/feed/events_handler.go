package feed

import (
	"log"

	"gitfeed/internal/errmsg"
	"gitfeed/internal/eventstore"
	"gitfeed/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// eventsHandler returns stored events in ascending timestamp order. The
// cursor is client-supplied on every call, so the feed holds no server-side
// session state and a given dataset always replays identically.
//
// @Summary Poll normalized events
// @Tags Feed
// @Produce json
// @Param since query string false "Exclusive lower-bound cursor (canonical UTC timestamp)"
// @Success 200 {array} models.Event
// @Failure 500 {object} errmsg._InternalServerError
// @Router /webhook/events [get]
func eventsHandler(c fiber.Ctx) error {
	since := c.Query("since")

	events, err := eventstore.Since(since)
	if err != nil {
		log.Printf("feed: failed to query events since %q: %v", since, err)
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	return c.JSON(events)
}
