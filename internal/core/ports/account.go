package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// UpdateProfileInput carries the self-service profile edit payload.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// AccountService defines the profile page's use cases. Delete also tears
// down the caller's session so the token stops working immediately.
type AccountService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	Delete(ctx context.Context, userID, token string) error
}
