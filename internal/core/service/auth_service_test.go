package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/linkforge/linkforge-api/internal/core/domain"
)

func TestAuthService_Register(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, newMemSessionStore(), nil, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Amy Pond", "Amy@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if user.Email != "amy@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.IsVerified {
		t.Fatalf("new accounts must start unverified")
	}
	if !user.IsActive {
		t.Fatalf("new accounts must start active")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, newMemSessionStore(), nil, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Amy", "amy@example.com", "pass"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other", "amy@example.com", "pass")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), newMemSessionStore(), nil, "secret", time.Hour)

	for _, tc := range []struct{ name, email, password string }{
		{"", "amy@example.com", "pass"},
		{"Amy", "", "pass"},
		{"Amy", "amy@example.com", ""},
	} {
		if _, err := svc.Register(context.Background(), tc.name, tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %+v, got %v", tc, err)
		}
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMemUserRepo()
	sessions := newMemSessionStore()
	recorder := &recorderStub{}
	svc := NewAuthService(repo, sessions, recorder, "secret", time.Hour)

	registered, err := svc.Register(context.Background(), "Amy", "amy@example.com", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "AMY@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, user.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("invalid token: %v", err)
	}
	if claims["sub"] != registered.ID || claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected claims: %v", claims)
	}

	sess, err := sessions.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if sess.User.ID != registered.ID {
		t.Fatalf("session holds wrong user: %s", sess.User.ID)
	}

	if !containsAction(recorder.recorded(), "login") {
		t.Fatalf("expected login activity event")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, newMemSessionStore(), nil, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Amy", "amy@example.com", "hunter22"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Login(context.Background(), "amy@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), newMemSessionStore(), nil, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pass")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_SuspendedOrInactive(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, newMemSessionStore(), nil, "secret", time.Hour)

	suspended, _ := svc.Register(context.Background(), "Sue", "sue@example.com", "pass")
	inactive, _ := svc.Register(context.Background(), "Ian", "ian@example.com", "pass")
	repo.byID[suspended.ID].IsSuspended = true
	repo.byID[inactive.ID].IsActive = false

	for _, email := range []string{"sue@example.com", "ian@example.com"} {
		_, _, err := svc.Login(context.Background(), email, "pass")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", email, err)
		}
	}
}

func TestAuthService_Logout(t *testing.T) {
	sessions := newMemSessionStore()
	svc := NewAuthService(newMemUserRepo(), sessions, nil, "secret", time.Hour)

	_ = sessions.Put(context.Background(), &domain.Session{Token: "tok"})
	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := sessions.Get(context.Background(), "tok"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session removed, got %v", err)
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewAuthService(repo, newMemSessionStore(), nil, "secret", time.Hour)

	registered, _ := svc.Register(context.Background(), "Amy", "amy@example.com", "pass")

	user, err := svc.CurrentUser(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if user.Email != "amy@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
