package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/linkforge/linkforge-api/internal/core/domain"
	"github.com/linkforge/linkforge-api/internal/core/ports"
)

// AuthService implements signup, login, session creation, and the
// current-user read.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	activity ports.ActivityRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates an account. New accounts always start as unverified
// regular users; an administrator approves them before the dashboard opens.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsVerified:   false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials, mints a token, and writes the session.
// Suspended and deactivated accounts are rejected here; the route guard
// intentionally does not re-check those flags.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.IsSuspended || !user.IsActive {
		return "", nil, domain.ErrForbidden
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.sessions.Put(ctx, &domain.Session{Token: token, User: *user, IssuedAt: now}); err != nil {
		return "", nil, err
	}

	if s.activity != nil {
		s.activity.Record(ports.ActivityInput{
			Actor:     user.ID,
			Action:    "login",
			Timestamp: now,
			Source:    "auth",
		})
	}

	return token, user, nil
}

// CurrentUser returns the authoritative record for id. This is the
// hydration read the route guard performs on every protected request.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Logout destroys the session for token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.EffectiveRole(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
