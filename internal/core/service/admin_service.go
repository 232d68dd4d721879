package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

const maxPageSize = 100

// AdminService implements the admin console's user management and
// activity feed.
type AdminService struct {
	users    ports.UserRepository
	activity ports.ActivityRepository
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	activity ports.ActivityRepository,
	recorder ports.ActivityRecorder,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, activity: activity, recorder: recorder, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 20
	}

	items, total, err := s.users.List(ctx, ports.ListUsersFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateUser applies an admin mutation (role, verification, suspension,
// activation) to the target account.
func (s *AdminService) UpdateUser(ctx context.Context, id string, update ports.UserFlagsUpdate) (*domain.User, error) {
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.UpdateFlags(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("role", user.Role).Bool("verified", user.IsVerified).Msg("user flags updated")

	if s.recorder != nil {
		s.recorder.Record(ports.ActivityInput{
			Actor:     id,
			Action:    "user_flags_updated",
			Target:    user.Email,
			Timestamp: time.Now().UTC(),
			Source:    "admin",
		})
	}
	return user, nil
}

func (s *AdminService) RecentActivity(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit < 1 || limit > maxPageSize {
		limit = 50
	}
	return s.activity.ListRecent(ctx, limit)
}
