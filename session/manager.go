// Package session mediates sign-in, token issuance, and session resolution
// for the dashboard.
package session

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/axis-learning/axis-server/internal/config"
	apperrors "github.com/axis-learning/axis-server/internal/errors"
	"github.com/axis-learning/axis-server/users"
)

// Manager establishes, validates, and exposes the authenticated identity.
// Session tokens are HMAC-signed JWTs held by the browser; nothing is
// persisted server-side, so a token stays valid until expiry.
type Manager struct {
	userRepo users.UserRepo
	secret   []byte
	lifetime time.Duration
	nowTime  func() time.Time // injectable for testing
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager creates a session Manager. A missing signing secret is a
// configuration error: it is logged once here and the manager fails closed,
// refusing to issue or resolve any session.
func NewManager(userRepo users.UserRepo, cfg config.SecurityConfig, options ...ManagerOption) (*Manager, error) {
	if userRepo == nil {
		return nil, errors.New("[NewManager] user repo is required")
	}

	secret := cfg.GetSessionSecret()
	if secret == "" {
		log.Error().Msg("SESSION_SECRET is not defined - all sessions will be treated as invalid")
	}

	m := &Manager{
		userRepo: userRepo,
		secret:   []byte(secret),
		lifetime: cfg.GetSessionLifetime(),
		nowTime:  time.Now,
	}

	for _, opt := range options {
		opt(m)
	}

	return m, nil
}

// SignIn handles a provider callback payload: it looks up the user record by
// email and creates one with the default role when absent. Creation is
// idempotent under concurrent first sign-ins for the same email - a
// unique-email conflict falls through to the existing record.
func (m *Manager) SignIn(ctx context.Context, profile Profile) (*users.User, error) {
	user, err := m.userRepo.GetByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.Wrapf(err, "[SignIn] user lookup failed for %s", profile.Email)
	}

	user = &users.User{
		Email:        profile.Email,
		Name:         profile.Name,
		ProfileImage: profile.ImageURL,
		Role:         users.DefaultRole,
	}

	err = m.userRepo.Create(ctx, user)
	if errors.Is(err, apperrors.ErrEmailExists) {
		// Lost the race against another first sign-in; use the winner's record.
		return m.userRepo.GetByEmail(ctx, profile.Email)
	}
	if err != nil {
		return nil, apperrors.Wrapf(err, "[SignIn] user create failed for %s", profile.Email)
	}

	return user, nil
}

// IssueToken produces a signed session token embedding the user's identity
// and role, valid for the configured lifetime from issuance. It is a pure
// function of the user record at this instant.
func (m *Manager) IssueToken(user *users.User) (string, error) {
	if len(m.secret) == 0 {
		return "", apperrors.ErrNoSigningSecret
	}

	now := m.nowTime()
	claims := jwtlib.MapClaims{
		"sub":     user.Email,
		"role":    string(user.Role),
		"name":    user.Name,
		"picture": user.ProfileImage,
		"iat":     now.Unix(),
		"exp":     now.Add(m.lifetime).Unix(),
		"jti":     uuid.New().String(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", apperrors.Wrapf(err, "[IssueToken] failed to sign session token")
	}
	return signed, nil
}

// Resolve decodes and verifies an incoming session token. On success it
// returns the embedded identity; on any failure (missing, malformed, expired,
// bad signature, no signing secret) it returns nil. Callers must treat nil
// identically to "never signed in".
func (m *Manager) Resolve(rawToken string) *Identity {
	if rawToken == "" || len(m.secret) == 0 {
		return nil
	}

	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(m.nowTime),
	)

	token, err := parser.ParseWithClaims(rawToken, jwtlib.MapClaims{}, func(t *jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &Identity{
		Email:        sub,
		Name:         name,
		ProfileImage: picture,
		Role:         users.RoleType(role),
	}
}
