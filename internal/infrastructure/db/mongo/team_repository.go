package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

const teamCollection = "team_members"

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamCollection)}
}

func (r *TeamRepository) Insert(ctx context.Context, member *domain.TeamMember) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrMemberExists
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByEmail(ctx context.Context, ownerID, email string) (*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.TeamMember
	err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID, "email": email}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return &m, nil
}

func (r *TeamRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "invited_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	var members []*domain.TeamMember
	for cur.Next(ctx) {
		var m domain.TeamMember
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode member: %w", err)
		}
		members = append(members, &m)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the team_members collection.
func (r *TeamRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
