package service

import (
	"context"
	"strings"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// defaultChatConfig is served until an administrator saves one.
var defaultChatConfig = domain.ChatWidgetConfig{
	Enabled: false,
	Scope:   domain.ScopeAll,
}

// ChatService manages the live-chat widget feature flag.
type ChatService struct {
	store ports.ChatConfigStore
}

func NewChatService(store ports.ChatConfigStore) *ChatService {
	return &ChatService{store: store}
}

func (s *ChatService) Get(ctx context.Context) (*domain.ChatWidgetConfig, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		c := defaultChatConfig
		return &c, nil
	}
	return cfg, nil
}

func (s *ChatService) Update(ctx context.Context, cfg domain.ChatWidgetConfig) error {
	if !domain.ValidChatScope(cfg.Scope) {
		return domain.ErrInvalidCredentials
	}
	return s.store.Save(ctx, &cfg)
}

// Resolve returns the config effective on the named page. Pages are
// matched by prefix: "dashboard" and "admin" count as dashboard pages,
// "home" (or empty) is the homepage, everything else is a public page.
func (s *ChatService) Resolve(ctx context.Context, page string) (*domain.ChatWidgetConfig, error) {
	cfg, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return cfg, nil
	}

	out := *cfg
	out.Enabled = scopeAllows(cfg.Scope, page)
	if !out.Enabled {
		out.Script = ""
	}
	return &out, nil
}

func scopeAllows(scope domain.ChatScope, page string) bool {
	page = strings.ToLower(strings.TrimSpace(page))
	onDashboard := strings.HasPrefix(page, "dashboard") || strings.HasPrefix(page, "admin")
	onHome := page == "" || page == "home" || page == "homepage"

	switch scope {
	case domain.ScopeHomepage:
		return onHome
	case domain.ScopeDashboard:
		return onDashboard
	case domain.ScopeExcludeDashboard:
		return !onDashboard
	default: // ScopeAll and unknown stored values
		return true
	}
}
