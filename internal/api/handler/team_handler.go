package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// TeamHandler handles the workspace team page.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=Admin Editor Viewer"`
	Name  string `json:"name"`
}

type memberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	Initials  string    `json:"initials"`
	Status    string    `json:"status"`
	InvitedAt time.Time `json:"invited_at"`
}

type listMembersResponse struct {
	Items []memberResponse `json:"items"`
	Total int              `json:"total"`
}

// Invite handles POST /v1/team — invites a collaborator.
//
// @Summary      Invite a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      inviteMemberRequest  true  "Invitation"
// @Success      201   {object}  memberResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/team [post]
func (h *TeamHandler) Invite(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req inviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	member, err := h.service.Invite(c.Request().Context(), ownerID, req.Email, req.Role, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMemberResponse(member))
}

// List handles GET /v1/team. Every row carries the member's stable ID so
// removal can address it.
//
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listMembersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/team [get]
func (h *TeamHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	members, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	items := make([]memberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, toMemberResponse(m))
	}
	return c.JSON(http.StatusOK, listMembersResponse{Items: items, Total: len(items)})
}

// Remove handles DELETE /v1/team/:id.
//
// @Summary      Remove a team member
// @Tags         team
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      204  "member removed"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/team/{id} [delete]
func (h *TeamHandler) Remove(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toMemberResponse(m *domain.TeamMember) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Email:     m.Email,
		Role:      m.Role,
		Name:      m.Name,
		Initials:  m.Initials,
		Status:    m.Status,
		InvitedAt: m.InvitedAt.UTC(),
	}
}
