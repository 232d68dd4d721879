package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// AuthService implements signup, login, and the current-user hydration
// read the route guard depends on.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials, mints a token, and creates a session.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser returns the authoritative user record for id.
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
