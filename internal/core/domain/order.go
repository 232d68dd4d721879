package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the delivery state of a link-building order.
type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var ErrOrderNotFound = errors.New("order not found")

// Order records a purchased package for a user. LinksTotal is derived from
// the package's links-per-month text at placement time; LinksDelivered is
// updated as outreach completes.
type Order struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	UserID         string      `json:"user_id" bson:"user_id"`
	PackageName    string      `json:"package_name" bson:"package_name"`
	PackageKind    string      `json:"package_kind" bson:"package_kind"`
	LinksDelivered int         `json:"links_delivered" bson:"links_delivered"`
	LinksTotal     int         `json:"links_total" bson:"links_total"`
	Amount         float64     `json:"amount" bson:"amount"`
	Currency       string      `json:"currency" bson:"currency"`
	Status         OrderStatus `json:"status" bson:"status"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
}
