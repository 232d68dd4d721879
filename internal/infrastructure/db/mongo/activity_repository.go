package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

const activityCollection = "activity_events"

// ActivityRepository persists audit events to an append-only collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := bson.M{
		"actor":        event.Actor,
		"action":       event.Action,
		"target":       event.Target,
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.ActivityEvent
	for cur.Next(ctx) {
		var doc struct {
			Actor     string    `bson:"actor"`
			Action    string    `bson:"action"`
			Target    string    `bson:"target"`
			Timestamp time.Time `bson:"timestamp"`
			Source    string    `bson:"source"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		events = append(events, &domain.ActivityEvent{
			Actor:     doc.Actor,
			Action:    doc.Action,
			Target:    doc.Target,
			Timestamp: doc.Timestamp,
			Source:    doc.Source,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return events, nil
}
