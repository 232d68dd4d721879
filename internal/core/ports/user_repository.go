package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// ListUsersFilter carries paging parameters for the admin user listing.
type ListUsersFilter struct {
	Page  int // 1-based
	Limit int // capped at 100 by the service
}

// UserFlagsUpdate holds the admin-editable account fields. Nil pointers
// leave the stored value untouched.
type UserFlagsUpdate struct {
	Role        *string
	IsVerified  *bool
	IsSuspended *bool
	IsActive    *bool
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile sets the self-editable fields (name, email).
	UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error)
	// UpdateFlags applies an admin mutation and returns the updated record.
	UpdateFlags(ctx context.Context, id string, update UserFlagsUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of users and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
