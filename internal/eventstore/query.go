package eventstore

import "go.mongodb.org/mongo-driver/bson"

// CursorFilter builds the Mongo filter for a polling cursor: no cursor
// matches every event, a cursor matches events whose timestamp is strictly
// greater. Plain string comparison is correct because the canonical
// timestamp format is fixed-width and zero-padded.
func CursorFilter(cursor string) bson.M {
	if cursor == "" {
		return bson.M{}
	}

	return bson.M{"timestamp": bson.M{"$gt": cursor}}
}
