package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxUserID extracts the authenticated user's ID injected by the Auth or
// Guard middleware and fast-fails when it is absent: presence proves the
// middleware ran for this route.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxToken returns the raw auth token the middleware resolved for this
// request.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
