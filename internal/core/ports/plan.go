package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// PlanInput carries the admin payload for creating or updating a plan.
type PlanInput struct {
	Name          string
	Kind          domain.PlanKind
	Price         *float64
	Currency      string
	LinksPerMonth string
	Features      []string
	Popular       bool
}

// PlanRepository defines persistence operations for the plan catalogues.
type PlanRepository interface {
	ListByKind(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error)
	Insert(ctx context.Context, plan *domain.Plan) error
	Update(ctx context.Context, id string, plan *domain.Plan) error
	Delete(ctx context.Context, id string) error
}

// PlanService serves the public catalogues and the admin CRUD. ListByKind
// never returns an empty catalogue: repository failures and empty results
// both fall back to the compiled-in list.
type PlanService interface {
	ListByKind(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error)
	Create(ctx context.Context, input PlanInput) (*domain.Plan, error)
	Update(ctx context.Context, id string, input PlanInput) (*domain.Plan, error)
	Delete(ctx context.Context, id string) error
}
