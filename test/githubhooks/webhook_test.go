package githubhooks

import (
	"encoding/json"
	"net/http"
	"testing"

	"gitfeed/internal/db"
	"gitfeed/internal/errmsg"
	"gitfeed/internal/models"
	"gitfeed/test/helpers"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

const webhookPath = "/webhook/github"

// Static fixture values for the webhook happy-path tests.
const (
	testCommitSHA = "abcdef1234567890abcdef1234567890abcdef12"
	testShortSHA  = "abcdef1"
	testPusher    = "bob"
	testPRNumber  = "1042"
)

func githubHeaders(eventType string) map[string]string {
	return map[string]string{"X-GitHub-Event": eventType}
}

func TestPushEventIsNormalizedAndStored(t *testing.T) {
	_, _ = db.Events.DeleteMany(db.Ctx, bson.M{"request_id": testShortSHA})

	payload := map[string]any{
		"ref":    "refs/heads/main",
		"pusher": map[string]string{"name": testPusher},
		"head_commit": map[string]any{
			"id":        testCommitSHA,
			"timestamp": "2024-01-15T10:30:00+02:00",
		},
		"commits": []map[string]any{
			{"id": testCommitSHA, "author": map[string]string{"name": "alice"}},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	bodyBytes, statusCode := helpers.RequestRunner(
		t, app, http.MethodPost, webhookPath, body, githubHeaders("push"),
	)
	require.Equal(t, http.StatusOK, statusCode)

	var response struct {
		Message string       `json:"message"`
		Event   models.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &response))
	require.Equal(t, "event stored successfully", response.Message)
	require.Equal(t, models.ActionPush, response.Event.Action)
	require.Equal(t, "2024-01-15T08:30:00Z", response.Event.Timestamp)

	var stored models.Event
	err = db.Events.FindOne(db.Ctx, bson.M{"request_id": testShortSHA}).Decode(&stored)
	require.NoError(t, err)

	require.Equal(t, models.Event{
		RequestID:  testShortSHA,
		Author:     testPusher,
		Action:     models.ActionPush,
		FromBranch: "main",
		ToBranch:   "main",
		Timestamp:  "2024-01-15T08:30:00Z",
	}, stored)
}

func TestMergedPullRequestStoresMergeEvent(t *testing.T) {
	_, _ = db.Events.DeleteMany(db.Ctx, bson.M{"request_id": testPRNumber})

	payload := map[string]any{
		"action": "closed",
		"pull_request": map[string]any{
			"number":     1042,
			"merged":     true,
			"user":       map[string]string{"login": "alice"},
			"head":       map[string]string{"ref": "feature/login"},
			"base":       map[string]string{"ref": "main"},
			"created_at": "2024-01-15T10:30:00Z",
			"updated_at": "2024-01-16T09:00:00Z",
			"merged_at":  "2024-01-16T08:59:30Z",
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	_, statusCode := helpers.RequestRunner(
		t, app, http.MethodPost, webhookPath, body, githubHeaders("pull_request"),
	)
	require.Equal(t, http.StatusOK, statusCode)

	var stored models.Event
	err = db.Events.FindOne(db.Ctx, bson.M{"request_id": testPRNumber}).Decode(&stored)
	require.NoError(t, err)

	require.Equal(t, models.ActionMerge, stored.Action)
	require.Equal(t, "feature/login", stored.FromBranch)
	require.Equal(t, "main", stored.ToBranch)
	require.Equal(t, "2024-01-16T08:59:30Z", stored.Timestamp)
}

func TestUnsupportedEventTypeIsIgnoredWithSuccess(t *testing.T) {
	const marker = "ignored-issue-314"
	_, _ = db.Events.DeleteMany(db.Ctx, bson.M{"request_id": marker})

	payload := map[string]any{
		"action": "opened",
		"issue":  map[string]any{"number": 314, "title": marker},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	bodyBytes, statusCode := helpers.RequestRunner(
		t, app, http.MethodPost, webhookPath, body, githubHeaders("issues"),
	)
	require.Equal(t, http.StatusOK, statusCode)

	var response struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bodyBytes, &response))
	require.Equal(t, "event type not supported or ignored", response.Message)

	count, err := db.Events.CountDocuments(db.Ctx, bson.M{"request_id": marker})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEmptyPayloadIsRejected(t *testing.T) {
	bodyBytes, statusCode := helpers.RequestRunner(
		t, app, http.MethodPost, webhookPath, nil, githubHeaders("push"),
	)

	helpers.ResponseErrorCheck(t, app, errmsg.WebhookEmptyPayload, bodyBytes, statusCode)
}

func TestMalformedPayloadIsRejected(t *testing.T) {
	bodyBytes, statusCode := helpers.RequestRunner(
		t, app, http.MethodPost, webhookPath, []byte(`{"ref":`), githubHeaders("push"),
	)

	helpers.ResponseErrorCheck(t, app, errmsg.WebhookInvalidPayload, bodyBytes, statusCode)
}
