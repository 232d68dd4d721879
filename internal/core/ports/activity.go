package ports

import (
	"context"
	"time"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// ActivityInput is the DTO passed from producers to the ActivityService.
type ActivityInput struct {
	Actor     string
	Action    string
	Target    string
	Timestamp time.Time
	Source    string
}

// ActivityRepository persists audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}

// ActivityService processes queued audit events.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
}

// ActivityRecorder is the producer-side interface: fire-and-forget
// enqueueing of audit events. The dispatcher implements it.
type ActivityRecorder interface {
	Record(event ActivityInput)
}
