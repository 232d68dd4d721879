package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// OrderHandler handles checkout and the orders page.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type placeOrderRequest struct {
	PackageName   string  `json:"package_name"    validate:"required"`
	PackageKind   string  `json:"package_kind"    validate:"required,oneof=link_building guest_posting"`
	LinksPerMonth string  `json:"links_per_month" validate:"required"`
	Amount        float64 `json:"amount"          validate:"required,gt=0"`
	Currency      string  `json:"currency"        validate:"required,len=3"`
}

type orderResponse struct {
	ID             string    `json:"id"`
	PackageName    string    `json:"package_name"`
	PackageKind    string    `json:"package_kind"`
	LinksDelivered int       `json:"links_delivered"`
	LinksTotal     int       `json:"links_total"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type listOrdersResponse struct {
	Items []orderResponse `json:"items"`
	Total int             `json:"total"`
}

// Place handles POST /v1/orders — the checkout action.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Checkout payload"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		UserID:        userID,
		PackageName:   req.PackageName,
		PackageKind:   req.PackageKind,
		LinksPerMonth: req.LinksPerMonth,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /v1/orders — the caller's order history.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	items := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Items: items, Total: len(items)})
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:             o.ID,
		PackageName:    o.PackageName,
		PackageKind:    o.PackageKind,
		LinksDelivered: o.LinksDelivered,
		LinksTotal:     o.LinksTotal,
		Amount:         o.Amount,
		Currency:       o.Currency,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.UTC(),
	}
}
