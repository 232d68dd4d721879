package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// TeamRepository defines persistence operations for workspace members.
type TeamRepository interface {
	Insert(ctx context.Context, member *domain.TeamMember) error
	FindByEmail(ctx context.Context, ownerID, email string) (*domain.TeamMember, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.TeamMember, error)
	// Delete removes the member with id from ownerID's workspace.
	Delete(ctx context.Context, ownerID, id string) error
}

// TeamService defines workspace membership use cases.
type TeamService interface {
	Invite(ctx context.Context, ownerID, email, role, name string) (*domain.TeamMember, error)
	List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error)
	Remove(ctx context.Context, ownerID, memberID string) error
}
