// Package eventstore is the storage adapter for normalized webhook events:
// insert-one plus a cursor range query over the canonical timestamp field.
package eventstore

import (
	"encoding/json"
	"log"

	"gitfeed/internal/db"
	"gitfeed/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// feedCacheKey holds the serialized cursorless feed in Redis. It is
// invalidated on every insert so pollers never see a stale full list.
const feedCacheKey = "feed:events:all"

// Insert appends one event to the log and drops the cached full feed.
func Insert(event models.Event) error {
	_, err := db.Events.InsertOne(db.Ctx, event)
	if err != nil {
		return err
	}

	if db.RDB != nil {
		if cerr := db.CacheDel(feedCacheKey); cerr != nil {
			log.Printf("eventstore: failed to invalidate feed cache: %v", cerr)
		}
	}

	return nil
}

// Since returns all events strictly newer than the cursor, ascending by
// timestamp. An empty cursor matches everything; that read is served from
// the Redis cache when warm. The returned slice is never nil.
func Since(cursor string) ([]models.Event, error) {
	if cursor == "" {
		if cached, ok := cachedFeed(); ok {
			return cached, nil
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	result, err := db.Events.Find(db.Ctx, CursorFilter(cursor), opts)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	if err = result.All(db.Ctx, &events); err != nil {
		return nil, err
	}

	if cursor == "" {
		storeFeed(events)
	}

	return events, nil
}

// cachedFeed loads the cursorless feed from Redis. Cache trouble is logged
// and treated as a miss; Mongo remains the source of truth.
func cachedFeed() ([]models.Event, bool) {
	if db.RDB == nil {
		return nil, false
	}

	raw, err := db.CacheGetBytes(feedCacheKey)
	if err != nil {
		return nil, false
	}

	var events []models.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("eventstore: corrupt feed cache entry: %v", err)
		return nil, false
	}

	return events, true
}

func storeFeed(events []models.Event) {
	if db.RDB == nil {
		return
	}

	raw, err := json.Marshal(events)
	if err != nil {
		return
	}

	if err := db.CacheSetBytes(feedCacheKey, raw); err != nil {
		log.Printf("eventstore: failed to cache feed: %v", err)
	}
}
