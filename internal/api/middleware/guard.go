package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/linkforge/linkforge-api/internal/api/metrics"
	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// Redirect targets for each way a request can fail the guard.
const (
	LoginPath           = "/login"
	PendingApprovalPath = "/pending-approval"
	DashboardPath       = "/dashboard"
)

// NoticeCookie carries the one-shot notification shown after a guard
// redirect, standing in for the client-side toast.
const NoticeCookie = "notice"

// CurrentUserFetcher is the hydration dependency: the authoritative
// "current user" read performed once per guarded request.
type CurrentUserFetcher interface {
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
}

// GuardConfig controls which sessions a guarded subtree admits.
type GuardConfig struct {
	// AllowedRoles restricts access to the listed roles. Empty means any
	// authenticated role.
	AllowedRoles []string
	// AllowUnverified admits accounts that have not been approved yet.
	// The zero value requires verification, matching every dashboard page.
	AllowUnverified bool
}

// Guard gates a route subtree on session state. Per request it
//  1. resolves the token and its session; missing either redirects to /login,
//  2. hydrates the user from the authoritative store, overwriting the
//     cached snapshot — a single attempt, with no retry: a failed fetch
//     redirects to /login even when a valid cached session exists,
//  3. checks verification, then role, on the effective user and redirects
//     to /pending-approval or /dashboard with a notice when either fails.
//
// IsSuspended and IsActive are intentionally not consulted here; they are
// enforced at login. The guard admits or redirects, nothing more — any
// future non-HTTP client must go through the same service layer rather
// than assume a UI check elsewhere covers it.
func Guard(store ports.SessionStore, users CurrentUserFetcher, cfg GuardConfig) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedRoles))
	for _, r := range cfg.AllowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := TokenFromRequest(c)
			if token == "" {
				return redirect(c, LoginPath, "unauthenticated", "")
			}

			sess, err := store.Get(ctx, token)
			if err != nil {
				return redirect(c, LoginPath, "unauthenticated", "")
			}

			fresh, err := users.CurrentUser(ctx, sess.User.ID)
			if err != nil {
				return redirect(c, LoginPath, "hydration_failed", "")
			}
			// Keep the snapshot current for the next request; failure here
			// is harmless, the next hydration overwrites it again.
			_ = store.SetUser(ctx, token, *fresh)

			effective := fresh
			if !cfg.AllowUnverified && !effective.IsVerified {
				return redirect(c, PendingApprovalPath, "unverified", "Your account is pending approval.")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[effective.EffectiveRole()]; !ok {
					return redirect(c, DashboardPath, "role", "You are not authorized to access this page.")
				}
			}

			c.Set("user", effective)
			c.Set("user_id", effective.ID)
			c.Set("role", effective.EffectiveRole())
			c.Set("token", token)

			return next(c)
		}
	}
}

// redirect sends the browser to target with an optional notice cookie and
// renders no body.
func redirect(c echo.Context, target, reason, notice string) error {
	metrics.GuardRedirectsTotal.WithLabelValues(reason).Inc()
	if notice != "" {
		c.SetCookie(&http.Cookie{
			Name:   NoticeCookie,
			Value:  url.QueryEscape(notice),
			Path:   "/",
			MaxAge: 10,
		})
	}
	return c.Redirect(http.StatusFound, target)
}
