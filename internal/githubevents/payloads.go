package githubevents

import (
	"encoding/json"
	"strconv"
)

// pushPayload models just the fields we rely on from a GitHub push hook.
type pushPayload struct {
	Ref        string         `json:"ref"`
	Pusher     pushAuthor     `json:"pusher"`
	HeadCommit *pushCommit    `json:"head_commit"`
	Commits    []pushCommit   `json:"commits"`
	Repository pushRepository `json:"repository"`
}

// pushCommit mirrors the subset of commit data the normalizer reads.
type pushCommit struct {
	ID        string     `json:"id"`
	Timestamp string     `json:"timestamp"`
	Author    pushAuthor `json:"author"`
}

// pushAuthor carries the name field shared by pusher and commit authors.
type pushAuthor struct {
	Name string `json:"name"`
}

// pushRepository exposes the repository-level timestamp fallback.
type pushRepository struct {
	PushedAt flexString `json:"pushed_at"`
}

// pullRequestPayload models the envelope of a pull_request hook.
type pullRequestPayload struct {
	Action      string       `json:"action"`
	PullRequest *pullRequest `json:"pull_request"`
}

// pullRequest mirrors the pull request fields the normalizer reads.
type pullRequest struct {
	Number    *int64     `json:"number"`
	Merged    bool       `json:"merged"`
	User      prUser     `json:"user"`
	Head      prBranch   `json:"head"`
	Base      prBranch   `json:"base"`
	CreatedAt flexString `json:"created_at"`
	UpdatedAt flexString `json:"updated_at"`
	MergedAt  flexString `json:"merged_at"`
}

type prUser struct {
	Login string `json:"login"`
}

type prBranch struct {
	Ref string `json:"ref"`
}

// flexString decodes a JSON string, number, or null into a string. GitHub
// sends repository.pushed_at as a unix epoch integer on webhook deliveries
// and as an RFC 3339 string elsewhere; a strict string field would fail the
// whole payload decode on the integer form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())

	return nil
}

// requestID stringifies the PR number, empty when GitHub omitted it.
func (pr *pullRequest) requestID() string {
	if pr.Number == nil {
		return ""
	}
	return strconv.FormatInt(*pr.Number, 10)
}
