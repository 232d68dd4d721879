package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// SessionStore holds the token → cached-user mapping consulted by the
// route guard. All session access goes through this interface; nothing
// else touches the underlying storage.
type SessionStore interface {
	// Get returns the session for token, or domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Put stores a new session under its token.
	Put(ctx context.Context, session *domain.Session) error
	// SetUser overwrites the cached user snapshot without extending the
	// session's lifetime.
	SetUser(ctx context.Context, token string, user domain.User) error
	// Delete removes the session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
