package githubevents

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gitfeed/internal/models"
)

// ErrUnsupportedEvent signals an event type this service does not process.
// Callers must treat it as a no-op outcome, not a failure.
var ErrUnsupportedEvent = errors.New("unsupported event type")

// branchRefPrefix marks refs that name branches; other refs (tags) pass
// through verbatim rather than being rejected.
const branchRefPrefix = "refs/heads/"

// shortHashLen is the truncated commit hash length used as a push request id.
const shortHashLen = 7

// Normalize converts a raw webhook delivery into a canonical Event. It
// returns ErrUnsupportedEvent for event types outside {push, pull_request}
// and a decode error when the payload body is not valid JSON. Missing nested
// fields are not errors; each one degrades to its documented fallback.
func Normalize(eventType string, payload []byte) (models.Event, error) {
	action, ok := Classify(eventType, payload)
	if !ok {
		return models.Event{}, ErrUnsupportedEvent
	}

	if action == models.ActionPush {
		return normalizePush(payload)
	}

	return normalizePullRequest(action, payload)
}

// normalizePush extracts a canonical Event from a push delivery. Push events
// have no source/target distinction, so both branch fields carry the same
// value.
func normalizePush(payload []byte) (models.Event, error) {
	var push pushPayload
	if err := json.Unmarshal(payload, &push); err != nil {
		return models.Event{}, fmt.Errorf("decode push payload: %w", err)
	}

	branch := push.Ref
	if strings.HasPrefix(branch, branchRefPrefix) {
		branch = strings.TrimPrefix(branch, branchRefPrefix)
	}

	return models.Event{
		RequestID:  pushRequestID(push.HeadCommit),
		Author:     pushAuthorName(push),
		Action:     models.ActionPush,
		FromBranch: branch,
		ToBranch:   branch,
		Timestamp:  NormalizeTimestamp(firstNonEmpty(pushTimestamp(push.HeadCommit), string(push.Repository.PushedAt))),
	}, nil
}

// normalizePullRequest extracts a canonical Event from a pull_request
// delivery. PULL_REQUEST and MERGE share this path; only the action value
// and the timestamp source differ. A missing pull_request object is not a
// failure, every field just resolves to its fallback.
func normalizePullRequest(action string, payload []byte) (models.Event, error) {
	var body pullRequestPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return models.Event{}, fmt.Errorf("decode pull_request payload: %w", err)
	}

	pr := body.PullRequest
	if pr == nil {
		pr = &pullRequest{}
	}

	var raw string
	if action == models.ActionMerge {
		raw = firstNonEmpty(string(pr.MergedAt), string(pr.UpdatedAt))
	} else {
		raw = string(pr.CreatedAt)
	}

	return models.Event{
		RequestID:  pr.requestID(),
		Author:     firstNonEmpty(pr.User.Login, models.UnknownAuthor),
		Action:     action,
		FromBranch: pr.Head.Ref,
		ToBranch:   pr.Base.Ref,
		Timestamp:  NormalizeTimestamp(raw),
	}, nil
}

// pushAuthorName resolves the push author: pusher name first, first listed
// commit's author second, Unknown last. A literal "Unknown" pusher is
// treated the same as an absent one so the commit author can still win.
func pushAuthorName(push pushPayload) string {
	pusher := push.Pusher.Name
	if pusher == models.UnknownAuthor {
		pusher = ""
	}

	var commitAuthor string
	if len(push.Commits) > 0 {
		commitAuthor = push.Commits[0].Author.Name
	}

	return firstNonEmpty(pusher, commitAuthor, models.UnknownAuthor)
}

// pushRequestID truncates the head commit hash to its short form.
func pushRequestID(head *pushCommit) string {
	if head == nil || head.ID == "" {
		return ""
	}
	if len(head.ID) <= shortHashLen {
		return head.ID
	}
	return head.ID[:shortHashLen]
}

func pushTimestamp(head *pushCommit) string {
	if head == nil {
		return ""
	}
	return head.Timestamp
}

// firstNonEmpty returns the first candidate that is not the empty string.
// The per-field fallback chains in this package all reduce to this.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
