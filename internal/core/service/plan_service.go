package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// PlanService serves the package and pricing catalogues. Public reads never
// fail outright: when the repository errors or holds nothing for a kind,
// the compiled-in fallback catalogue is returned instead, so the marketing
// pages always have plans to render.
type PlanService struct {
	repo   ports.PlanRepository
	logger zerolog.Logger
}

func NewPlanService(repo ports.PlanRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{repo: repo, logger: logger}
}

func (s *PlanService) ListByKind(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
	plans, err := s.repo.ListByKind(ctx, kind)
	if err != nil {
		s.logger.Warn().Err(err).Str("kind", string(kind)).Msg("plan lookup failed, serving fallback catalogue")
		return FallbackPlans(kind), nil
	}
	if len(plans) == 0 {
		return FallbackPlans(kind), nil
	}
	return plans, nil
}

func (s *PlanService) Create(ctx context.Context, input ports.PlanInput) (*domain.Plan, error) {
	plan := planFromInput(input)
	plan.ID = uuid.NewString()
	if err := s.repo.Insert(ctx, plan); err != nil {
		return nil, err
	}
	s.logger.Info().Str("plan_id", plan.ID).Str("name", plan.Name).Msg("plan created")
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error) {
	plan := planFromInput(input)
	plan.ID = id
	if err := s.repo.Update(ctx, id, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func planFromInput(input ports.PlanInput) *domain.Plan {
	return &domain.Plan{
		Name:          input.Name,
		Kind:          input.Kind,
		Price:         input.Price,
		Currency:      input.Currency,
		LinksPerMonth: input.LinksPerMonth,
		Features:      input.Features,
		Popular:       input.Popular,
	}
}

func price(v float64) *float64 { return &v }

// FallbackPlans returns the compiled-in catalogue for kind. These mirror
// the tiers published on the marketing site and are served whenever the
// database copy is unavailable or empty.
func FallbackPlans(kind domain.PlanKind) []*domain.Plan {
	switch kind {
	case domain.KindLinkBuilding:
		return []*domain.Plan{
			{
				Name:          "Starter",
				Kind:          domain.KindLinkBuilding,
				Price:         price(499),
				Currency:      "USD",
				LinksPerMonth: "5 links/month",
				Features: []string{
					"DR 30+ referring domains",
					"White-hat manual outreach",
					"Monthly report",
				},
			},
			{
				Name:          "Growth",
				Kind:          domain.KindLinkBuilding,
				Price:         price(999),
				Currency:      "USD",
				LinksPerMonth: "12 links/month",
				Features: []string{
					"DR 50+ referring domains",
					"Anchor text strategy",
					"Competitor gap analysis",
					"Monthly report",
				},
				Popular: true,
			},
			{
				Name:          "Enterprise",
				Kind:          domain.KindLinkBuilding,
				Currency:      "USD",
				LinksPerMonth: "Unlimited",
				Features: []string{
					"DR 70+ referring domains",
					"Dedicated account manager",
					"Custom reporting",
				},
			},
		}
	case domain.KindGuestPosting:
		return []*domain.Plan{
			{
				Name:          "Guest Post Basic",
				Kind:          domain.KindGuestPosting,
				Price:         price(299),
				Currency:      "USD",
				LinksPerMonth: "3 links/month",
				Features: []string{
					"Niche-relevant blogs",
					"1000+ word articles",
					"Do-follow placements",
				},
			},
			{
				Name:          "Guest Post Pro",
				Kind:          domain.KindGuestPosting,
				Price:         price(699),
				Currency:      "USD",
				LinksPerMonth: "8 links/month",
				Features: []string{
					"DR 40+ publications",
					"Content strategy included",
					"Do-follow placements",
				},
				Popular: true,
			},
		}
	case domain.KindPricing:
		return []*domain.Plan{
			{
				Name:     "Basic",
				Kind:     domain.KindPricing,
				Price:    price(499),
				Currency: "USD",
				Features: []string{"5 links/month", "Email support"},
			},
			{
				Name:     "Professional",
				Kind:     domain.KindPricing,
				Price:    price(999),
				Currency: "USD",
				Features: []string{"12 links/month", "Priority support", "Quarterly strategy call"},
				Popular:  true,
			},
			{
				Name:     "Custom",
				Kind:     domain.KindPricing,
				Currency: "USD",
				Features: []string{"Tailored link volume", "Dedicated account manager"},
			},
		}
	}
	return nil
}
