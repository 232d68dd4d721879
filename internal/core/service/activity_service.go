package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/api/metrics"
	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// ActivityDedup abstracts the idempotency store (Redis).
type ActivityDedup interface {
	IsDuplicate(ctx context.Context, actor, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, actor, action string, ts time.Time) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup ActivityDedup
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup ActivityDedup, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.Actor, in.Action, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("actor", in.Actor).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("actor", in.Actor).Str("action", in.Action).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()

	// Mark before writing so a retried batch cannot double-insert.
	if markErr := s.dedup.Mark(ctx, in.Actor, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("actor", in.Actor).Msg("failed to set dedup key")
	}

	event := &domain.ActivityEvent{
		Actor:     in.Actor,
		Action:    in.Action,
		Target:    in.Target,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	metrics.ActivityProcessedTotal.Inc()
	s.log.Debug().
		Str("actor", in.Actor).
		Str("action", in.Action).
		Str("source", in.Source).
		Msg("activity recorded")

	return nil
}
