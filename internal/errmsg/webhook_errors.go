package errmsg

import "net/http"

// Webhook ingestion StatusError helpers surfaced by the handler.
var (
	WebhookEmptyPayload = NewStatusError(
		http.StatusBadRequest,
		"no payload received",
	)
	WebhookInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"invalid webhook payload",
	)
	WebhookInvalidAction = NewStatusError(
		http.StatusBadRequest,
		"invalid action type",
	)
)

type _WebhookEmptyPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"no payload received"`
}

type _WebhookInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid webhook payload"`
}

type _WebhookInvalidAction struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"invalid action type"`
}
