package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// AccountService implements the profile page: read, edit, and account
// deletion.
type AccountService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AccountService {
	return &AccountService{users: users, sessions: sessions, logger: logger}
}

func (s *AccountService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update changes the self-editable profile fields and refreshes any cached
// session snapshot lazily: the next guard hydration picks up the new values.
func (s *AccountService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.users.UpdateProfile(ctx, userID, name, email)
}

// Delete removes the account and destroys the caller's session so the
// token stops working immediately.
func (s *AccountService) Delete(ctx context.Context, userID, token string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		// Account is gone; the orphaned session expires with its TTL.
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to delete session after account removal")
	}
	s.logger.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}
