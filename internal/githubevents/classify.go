// Package githubevents normalizes GitHub webhook deliveries into canonical
// Event records. It is pure: every function is a function of its inputs plus
// the wall clock, which is only consulted as a timestamp fallback.
package githubevents

import (
	"encoding/json"
	"strings"

	"gitfeed/internal/models"
)

// GitHub event type tags carried in the X-GitHub-Event header.
const (
	eventTypePush        = "push"
	eventTypePullRequest = "pull_request"
)

// prActionClosed is the payload action value on which merge detection hinges.
const prActionClosed = "closed"

// Classify maps an event type tag and raw payload body onto one canonical
// action. ok is false for event types this service intentionally ignores;
// that outcome is a silent-ignore signal, not an error.
//
// A pull_request delivery counts as a MERGE only when its action is "closed"
// and the pull request's merged flag is set. Every other pull_request action
// (opened, reopened, closed-without-merge, ...) collapses to PULL_REQUEST.
func Classify(eventType string, payload []byte) (action string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(eventType)) {
	case eventTypePush:
		return models.ActionPush, true
	case eventTypePullRequest:
		var body pullRequestPayload
		if err := json.Unmarshal(payload, &body); err == nil && isMerge(body) {
			return models.ActionMerge, true
		}
		return models.ActionPullRequest, true
	default:
		return "", false
	}
}

func isMerge(body pullRequestPayload) bool {
	return strings.EqualFold(body.Action, prActionClosed) &&
		body.PullRequest != nil &&
		body.PullRequest.Merged
}
