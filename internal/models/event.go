package models

// Canonical action values an Event may carry.
const (
	ActionPush        = "PUSH"
	ActionPullRequest = "PULL_REQUEST"
	ActionMerge       = "MERGE"
)

// UnknownAuthor is the sentinel stored when no author could be resolved
// from the webhook payload.
const UnknownAuthor = "Unknown"

// Event is the canonical record describing one source-control action,
// normalized from a GitHub webhook payload. It is immutable once built and
// stored append-only; Timestamp is the canonical UTC second-precision string
// (YYYY-MM-DDTHH:MM:SSZ) so lexicographic range queries stay correct.
type Event struct {
	RequestID  string `json:"request_id" bson:"request_id"`
	Author     string `json:"author" bson:"author"`
	Action     string `json:"action" bson:"action"`
	FromBranch string `json:"from_branch" bson:"from_branch"`
	ToBranch   string `json:"to_branch" bson:"to_branch"`
	Timestamp  string `json:"timestamp" bson:"timestamp"`
}

// IsSupportedAction reports whether action is one of the canonical values.
// The webhook handler re-checks this between normalization and persistence.
func IsSupportedAction(action string) bool {
	switch action {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	default:
		return false
	}
}
