package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

const plansCollection = "plans"

type PlanRepository struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{coll: db.Collection(plansCollection)}
}

func (r *PlanRepository) ListByKind(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"kind": string(kind)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer cur.Close(ctx)

	var plans []*domain.Plan
	for cur.Next(ctx) {
		var p domain.Plan
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode plan: %w", err)
		}
		plans = append(plans, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) Insert(ctx context.Context, plan *domain.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, plan); err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, id string, plan *domain.Plan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, plan)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the plans collection.
func (r *PlanRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "kind", Value: 1}},
	})
	return err
}
