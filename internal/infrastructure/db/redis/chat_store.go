package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

const chatConfigKey = "chat:widget"

// ChatConfigStore persists the live-chat widget config as a single JSON
// value, mirroring the feature-flag blob the original site kept per client.
type ChatConfigStore struct {
	client *redis.Client
}

func NewChatConfigStore(client *redis.Client) *ChatConfigStore {
	return &ChatConfigStore{client: client}
}

// Load returns the stored config, or nil when none has been saved yet.
func (s *ChatConfigStore) Load(ctx context.Context) (*domain.ChatWidgetConfig, error) {
	raw, err := s.client.Get(ctx, chatConfigKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("chat config get: %w", err)
	}

	var cfg domain.ChatWidgetConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("chat config decode: %w", err)
	}
	return &cfg, nil
}

func (s *ChatConfigStore) Save(ctx context.Context, cfg *domain.ChatWidgetConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("chat config encode: %w", err)
	}
	if err := s.client.Set(ctx, chatConfigKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("chat config set: %w", err)
	}
	return nil
}
