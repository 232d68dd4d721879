package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope %q: %v", rec.Body.String(), err)
	}
	return rec, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrSessionNotFound, http.StatusUnauthorized, "session expired"},
		{domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{domain.ErrPlanNotFound, http.StatusNotFound, "plan not found"},
		{domain.ErrMemberNotFound, http.StatusNotFound, "team member not found"},
		{domain.ErrMemberExists, http.StatusConflict, "team member already invited"},
	}

	for _, tc := range cases {
		rec, msg := runErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if msg != tc.msg {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.msg, msg)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := runErrorHandler(t, fmt.Errorf("lookup: %w", domain.ErrUserNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel must keep its status, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("expected 400 invalid payload, got %d %q", rec.Code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, msg := runErrorHandler(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
