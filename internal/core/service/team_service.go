package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// TeamService manages workspace membership. Every member carries a stable
// uuid so that listings and removal address the same record.
type TeamService struct {
	repo     ports.TeamRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewTeamService(repo ports.TeamRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *TeamService {
	return &TeamService{repo: repo, activity: activity, logger: logger}
}

// Invite adds a member to the owner's workspace in "invited" status.
// A second invite for the same email is rejected with ErrMemberExists.
func (s *TeamService) Invite(ctx context.Context, ownerID, email, role, name string) (*domain.TeamMember, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !domain.ValidTeamRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, ownerID, email)
	if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrMemberExists
	}

	now := time.Now().UTC()
	member := &domain.TeamMember{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Email:     email,
		Role:      role,
		Name:      name,
		Initials:  domain.Initials(name, email),
		Status:    domain.MemberInvited,
		InvitedAt: now,
	}

	if err := s.repo.Insert(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info().Str("owner_id", ownerID).Str("member_id", member.ID).Str("role", role).Msg("team member invited")

	if s.activity != nil {
		s.activity.Record(ports.ActivityInput{
			Actor:     ownerID,
			Action:    "member_invited",
			Target:    email,
			Timestamp: now,
			Source:    "team",
		})
	}

	return member, nil
}

// List returns the owner's workspace members, including their stable IDs.
func (s *TeamService) List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Remove deletes the member with memberID from the owner's workspace.
func (s *TeamService) Remove(ctx context.Context, ownerID, memberID string) error {
	if err := s.repo.Delete(ctx, ownerID, memberID); err != nil {
		return err
	}

	if s.activity != nil {
		s.activity.Record(ports.ActivityInput{
			Actor:     ownerID,
			Action:    "member_removed",
			Target:    memberID,
			Timestamp: time.Now().UTC(),
			Source:    "team",
		})
	}
	return nil
}
