package eventstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCursorFilter(t *testing.T) {
	require.Equal(t, bson.M{}, CursorFilter(""))

	require.Equal(
		t,
		bson.M{"timestamp": bson.M{"$gt": "2024-01-01T00:00:00Z"}},
		CursorFilter("2024-01-01T00:00:00Z"),
	)
}
