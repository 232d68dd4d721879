package domain

import "errors"

// PlanKind distinguishes the three catalogues the marketing site serves.
type PlanKind string

const (
	KindLinkBuilding PlanKind = "link_building"
	KindGuestPosting PlanKind = "guest_posting"
	KindPricing      PlanKind = "pricing"
)

var ErrPlanNotFound = errors.New("plan not found")

// Plan is a sellable package or pricing tier. Price is nil for
// "contact us" tiers. LinksPerMonth is free text as shown on the site
// (e.g. "5 links/month", "Unlimited"); the order service derives a
// numeric total from its leading digits.
type Plan struct {
	ID            string   `json:"id" bson:"_id,omitempty"`
	Name          string   `json:"name" bson:"name"`
	Kind          PlanKind `json:"kind" bson:"kind"`
	Price         *float64 `json:"price" bson:"price,omitempty"`
	Currency      string   `json:"currency" bson:"currency"`
	LinksPerMonth string   `json:"links_per_month,omitempty" bson:"links_per_month,omitempty"`
	Features      []string `json:"features" bson:"features"`
	Popular       bool     `json:"popular" bson:"popular"`
}

// ValidPlanKind reports whether kind names a known catalogue.
func ValidPlanKind(kind PlanKind) bool {
	return kind == KindLinkBuilding || kind == KindGuestPosting || kind == KindPricing
}
