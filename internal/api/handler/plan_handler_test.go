package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

func TestPlanHandler_ListPackages_DefaultsToLinkBuilding(t *testing.T) {
	var gotKind domain.PlanKind
	svc := &stubPlanService{
		listFn: func(_ context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
			gotKind = kind
			return []*domain.Plan{{ID: "p1", Name: "Starter", Kind: kind}}, nil
		},
	}
	h := NewPlanHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/packages", "")
	if err := h.ListPackages(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotKind != domain.KindLinkBuilding {
		t.Fatalf("expected default kind, got %q", gotKind)
	}
}

func TestPlanHandler_ListPackages_RejectsBadKind(t *testing.T) {
	h := NewPlanHandler(&stubPlanService{
		listFn: func(context.Context, domain.PlanKind) ([]*domain.Plan, error) {
			t.Fatalf("service must not be called for a rejected kind")
			return nil, nil
		},
	})

	// The pricing catalogue has its own endpoint and unknown kinds have no
	// catalogue at all.
	for _, kind := range []string{"pricing", "backlinks"} {
		c, _ := newTestContext(t, http.MethodGet, "/v1/packages?kind="+kind, "")
		err := h.ListPackages(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("kind %q: expected 400, got %v", kind, err)
		}
	}
}

func TestPlanHandler_ListPricing(t *testing.T) {
	svc := &stubPlanService{
		listFn: func(_ context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
			if kind != domain.KindPricing {
				t.Fatalf("expected pricing kind, got %q", kind)
			}
			return []*domain.Plan{{ID: "p1", Name: "Basic", Kind: kind}}, nil
		},
	}
	h := NewPlanHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/pricing", "")
	if err := h.ListPricing(c); err != nil {
		t.Fatalf("pricing: %v", err)
	}

	var resp listPlansResponse
	decodeBody(t, rec, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Name != "Basic" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPlanHandler_Create(t *testing.T) {
	svc := &stubPlanService{
		createFn: func(_ context.Context, input ports.PlanInput) (*domain.Plan, error) {
			return &domain.Plan{
				ID:       "p1",
				Name:     input.Name,
				Kind:     input.Kind,
				Price:    input.Price,
				Currency: input.Currency,
				Features: input.Features,
			}, nil
		},
	}
	h := NewPlanHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/admin/plans",
		`{"name":"Starter","kind":"link_building","price":499,"currency":"USD","features":["5 links/month"]}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var plan domain.Plan
	decodeBody(t, rec, &plan)
	if plan.ID != "p1" || plan.Price == nil || *plan.Price != 499 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestPlanHandler_Create_AllowsContactUsTier(t *testing.T) {
	svc := &stubPlanService{
		createFn: func(_ context.Context, input ports.PlanInput) (*domain.Plan, error) {
			if input.Price != nil {
				t.Fatalf("expected nil price, got %v", *input.Price)
			}
			return &domain.Plan{ID: "p1", Name: input.Name, Kind: input.Kind}, nil
		},
	}
	h := NewPlanHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/v1/admin/plans",
		`{"name":"Enterprise","kind":"link_building","currency":"USD","features":["Unlimited"]}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPlanHandler_Update_UnknownPlan(t *testing.T) {
	h := NewPlanHandler(&stubPlanService{
		updateFn: func(context.Context, string, ports.PlanInput) (*domain.Plan, error) {
			return nil, domain.ErrPlanNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodPut, "/v1/admin/plans/missing",
		`{"name":"X","kind":"pricing","currency":"USD","features":["a"]}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); err != domain.ErrPlanNotFound {
		t.Fatalf("expected sentinel to propagate, got %v", err)
	}
}

func TestPlanHandler_Delete(t *testing.T) {
	var deleted string
	h := NewPlanHandler(&stubPlanService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/v1/admin/plans/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != "p1" {
		t.Fatalf("expected p1 deleted with 204, got %d %q", rec.Code, deleted)
	}
}
