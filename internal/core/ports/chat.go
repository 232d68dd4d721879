package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// ChatConfigStore persists the single live-chat widget configuration.
type ChatConfigStore interface {
	// Load returns the stored config, or nil when none has been saved yet.
	Load(ctx context.Context) (*domain.ChatWidgetConfig, error)
	Save(ctx context.Context, cfg *domain.ChatWidgetConfig) error
}

// ChatService exposes the widget config to the admin console and resolves
// it per page for the public site.
type ChatService interface {
	Get(ctx context.Context) (*domain.ChatWidgetConfig, error)
	Update(ctx context.Context, cfg domain.ChatWidgetConfig) error
	// Resolve returns the config effective on the named page ("home",
	// "dashboard", ...), with Enabled forced off when the scope excludes it.
	Resolve(ctx context.Context, page string) (*domain.ChatWidgetConfig, error)
}
