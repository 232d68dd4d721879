package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// ChatHandler serves the live-chat widget feature flag: a public resolve
// endpoint for the site and admin read/write for the console.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatConfigRequest struct {
	Enabled      bool   `json:"enabled"`
	Script       string `json:"script"`
	Scope        string `json:"scope"         validate:"required,oneof=all homepage dashboard exclude_dashboard"`
	AutoReply    string `json:"auto_reply"`
	SupportEmail string `json:"support_email" validate:"omitempty,email"`
}

// Resolve handles GET /v1/chat-widget?page= — the config effective on a page.
//
// @Summary      Resolve chat widget for a page
// @Tags         chat
// @Produce      json
// @Param        page  query     string  false  "Page identifier (home, dashboard, ...)"
// @Success      200   {object}  domain.ChatWidgetConfig
// @Router       /v1/chat-widget [get]
func (h *ChatHandler) Resolve(c echo.Context) error {
	cfg, err := h.service.Resolve(c.Request().Context(), c.QueryParam("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Get handles GET /v1/admin/chat-widget.
//
// @Summary      Get chat widget config
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ChatWidgetConfig
// @Router       /v1/admin/chat-widget [get]
func (h *ChatHandler) Get(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Update handles PUT /v1/admin/chat-widget.
//
// @Summary      Update chat widget config
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatConfigRequest  true  "Widget config"
// @Success      200   {object}  domain.ChatWidgetConfig
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/chat-widget [put]
func (h *ChatHandler) Update(c echo.Context) error {
	var req chatConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cfg := domain.ChatWidgetConfig{
		Enabled:      req.Enabled,
		Script:       req.Script,
		Scope:        domain.ChatScope(req.Scope),
		AutoReply:    req.AutoReply,
		SupportEmail: req.SupportEmail,
	}
	if err := h.service.Update(c.Request().Context(), cfg); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
