package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// ListUsersResult is the paged admin user listing.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService defines the admin console's user-management use cases.
type AdminService interface {
	ListUsers(ctx context.Context, page, limit int) (*ListUsersResult, error)
	UpdateUser(ctx context.Context, id string, update UserFlagsUpdate) (*domain.User, error)
	RecentActivity(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}
