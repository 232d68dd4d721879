package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/api/metrics"
	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// OrderService implements checkout and order history.
type OrderService struct {
	repo     ports.OrderRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, activity: activity, logger: logger}
}

// Place creates an order for the given package. The links total comes from
// the package's free-text quota ("5 links/month" → 5); packages with no
// leading digits ("Unlimited") fall back to 1.
func (s *OrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	order := &domain.Order{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		PackageName:    input.PackageName,
		PackageKind:    input.PackageKind,
		LinksDelivered: 0,
		LinksTotal:     ParseLinksTotal(input.LinksPerMonth),
		Amount:         input.Amount,
		Currency:       input.Currency,
		Status:         domain.OrderActive,
		CreatedAt:      now,
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(order.PackageKind).Inc()
	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Str("package", order.PackageName).
		Int("links_total", order.LinksTotal).
		Msg("order placed")

	if s.activity != nil {
		s.activity.Record(ports.ActivityInput{
			Actor:     input.UserID,
			Action:    "order_placed",
			Target:    order.PackageName,
			Timestamp: now,
			Source:    "orders",
		})
	}

	return order, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ParseLinksTotal extracts the leading integer from a link-quota string.
// Returns 1 when the string has no leading digits or the value is not a
// positive number.
func ParseLinksTotal(linksPerMonth string) int {
	s := strings.TrimSpace(linksPerMonth)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 1
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}
