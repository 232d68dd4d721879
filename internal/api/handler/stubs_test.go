package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// Stub services shared by the handler tests. Each field overrides one
// operation; unset operations fail loudly so a test cannot silently hit
// an unexpected path.

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	currentFn  func(ctx context.Context, id string) (*domain.User, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.currentFn(ctx, id)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

type stubOrderService struct {
	placeFn func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error)
	listFn  func(ctx context.Context, userID string) ([]*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, input)
}

func (s *stubOrderService) ListForUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.listFn(ctx, userID)
}

type stubTeamService struct {
	inviteFn func(ctx context.Context, ownerID, email, role, name string) (*domain.TeamMember, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.TeamMember, error)
	removeFn func(ctx context.Context, ownerID, memberID string) error
}

func (s *stubTeamService) Invite(ctx context.Context, ownerID, email, role, name string) (*domain.TeamMember, error) {
	return s.inviteFn(ctx, ownerID, email, role, name)
}

func (s *stubTeamService) List(ctx context.Context, ownerID string) ([]*domain.TeamMember, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubTeamService) Remove(ctx context.Context, ownerID, memberID string) error {
	return s.removeFn(ctx, ownerID, memberID)
}

type stubPlanService struct {
	listFn   func(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error)
	createFn func(ctx context.Context, input ports.PlanInput) (*domain.Plan, error)
	updateFn func(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubPlanService) ListByKind(ctx context.Context, kind domain.PlanKind) ([]*domain.Plan, error) {
	return s.listFn(ctx, kind)
}

func (s *stubPlanService) Create(ctx context.Context, input ports.PlanInput) (*domain.Plan, error) {
	return s.createFn(ctx, input)
}

func (s *stubPlanService) Update(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubPlanService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// newTestContext builds an Echo context with the validator installed, the
// way the router configures it.
func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
