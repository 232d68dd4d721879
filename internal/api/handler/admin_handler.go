package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// AdminHandler serves the admin console: user management and the
// activity feed.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateUserRequest struct {
	Role        *string `json:"role"`
	IsVerified  *bool   `json:"is_verified"`
	IsSuspended *bool   `json:"is_suspended"`
	IsActive    *bool   `json:"is_active"`
}

type listUsersResponse struct {
	Items      []*domain.User `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type activityResponse struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

type listActivityResponse struct {
	Items []activityResponse `json:"items"`
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listUsersResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// UpdateUser handles PATCH /v1/admin/users/:id — verification, suspension,
// activation, and role changes. Absent fields are left untouched.
//
// @Summary      Update user flags
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UserFlagsUpdate{
		Role:        req.Role,
		IsVerified:  req.IsVerified,
		IsSuspended: req.IsSuspended,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Activity handles GET /v1/admin/activity — the recent audit feed.
//
// @Summary      Recent activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max events (default 50)"
// @Success      200    {object}  listActivityResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/admin/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.service.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	items := make([]activityResponse, 0, len(events))
	for _, e := range events {
		items = append(items, activityResponse{
			Actor:     e.Actor,
			Action:    e.Action,
			Target:    e.Target,
			Timestamp: e.Timestamp.UTC(),
			Source:    e.Source,
		})
	}
	return c.JSON(http.StatusOK, listActivityResponse{Items: items})
}
