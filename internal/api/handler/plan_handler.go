package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// PlanHandler serves the public package/pricing catalogues and the admin
// plan CRUD.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

type planRequest struct {
	Name          string   `json:"name"            validate:"required"`
	Kind          string   `json:"kind"            validate:"required,oneof=link_building guest_posting pricing"`
	Price         *float64 `json:"price"`
	Currency      string   `json:"currency"        validate:"required,len=3"`
	LinksPerMonth string   `json:"links_per_month"`
	Features      []string `json:"features"        validate:"required,min=1"`
	Popular       bool     `json:"popular"`
}

type listPlansResponse struct {
	Items []*domain.Plan `json:"items"`
}

// ListPackages handles GET /v1/packages — the public package catalogue.
// Failures fall back to the compiled-in list, so the response is never empty.
//
// @Summary      List packages
// @Tags         plans
// @Produce      json
// @Param        kind  query     string  false  "Catalogue kind"  Enums(link_building, guest_posting)
// @Success      200   {object}  listPlansResponse
// @Router       /v1/packages [get]
func (h *PlanHandler) ListPackages(c echo.Context) error {
	kind := domain.PlanKind(c.QueryParam("kind"))
	if kind == "" {
		kind = domain.KindLinkBuilding
	}
	if !domain.ValidPlanKind(kind) || kind == domain.KindPricing {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown package kind")
	}

	plans, err := h.service.ListByKind(c.Request().Context(), kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPlansResponse{Items: plans})
}

// ListPricing handles GET /v1/pricing — the public pricing page.
//
// @Summary      List pricing plans
// @Tags         plans
// @Produce      json
// @Success      200  {object}  listPlansResponse
// @Router       /v1/pricing [get]
func (h *PlanHandler) ListPricing(c echo.Context) error {
	plans, err := h.service.ListByKind(c.Request().Context(), domain.KindPricing)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPlansResponse{Items: plans})
}

// Create handles POST /v1/admin/plans.
//
// @Summary      Create a plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      planRequest  true  "Plan"
// @Success      201   {object}  domain.Plan
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	input, err := bindPlanInput(c)
	if err != nil {
		return err
	}

	plan, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// Update handles PUT /v1/admin/plans/:id.
//
// @Summary      Update a plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Plan ID"
// @Param        body  body      planRequest  true  "Plan"
// @Success      200   {object}  domain.Plan
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	input, err := bindPlanInput(c)
	if err != nil {
		return err
	}

	plan, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /v1/admin/plans/:id.
//
// @Summary      Delete a plan
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Plan ID"
// @Success      204  "plan deleted"
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/plans/{id} [delete]
func (h *PlanHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindPlanInput(c echo.Context) (ports.PlanInput, error) {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return ports.PlanInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.PlanInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.PlanInput{
		Name:          req.Name,
		Kind:          domain.PlanKind(req.Kind),
		Price:         req.Price,
		Currency:      req.Currency,
		LinksPerMonth: req.LinksPerMonth,
		Features:      req.Features,
		Popular:       req.Popular,
	}, nil
}
