package ports

import (
	"context"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

// PlaceOrderInput carries the checkout payload from the transport layer.
// LinksPerMonth is the package's free-text link quota; the service derives
// the numeric total from it.
type PlaceOrderInput struct {
	UserID        string
	PackageName   string
	PackageKind   string
	LinksPerMonth string
	Amount        float64
	Currency      string
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
}

// OrderService defines checkout and order-history use cases.
type OrderService interface {
	Place(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Order, error)
}
