package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/axis-learning/axis-server/internal/config"
)

// IdentityProvider abstracts the external OAuth identity provider so handlers
// can be exercised against a fake in tests.
type IdentityProvider interface {
	// AuthCodeURL builds the URL the user agent is redirected to for sign-in.
	AuthCodeURL(state, nonce string) string
	// Authenticate exchanges the authorization code and verifies the ID token,
	// returning the provider's identity payload.
	Authenticate(ctx context.Context, code, nonce string) (*Profile, error)
}

// GoogleProvider implements IdentityProvider against Google's OIDC endpoints.
type GoogleProvider struct {
	oauthConfig *oauth2.Config
	verifier    *oidc.IDTokenVerifier
}

var _ IdentityProvider = (*GoogleProvider)(nil)

// NewGoogleProvider discovers the Google OIDC configuration and prepares the
// oauth2 client config. redirectURL must match a URI registered for the
// client in the Google console.
func NewGoogleProvider(ctx context.Context, cfg config.OAuthConfig, redirectURL string) (*GoogleProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.GetGoogleIssuer())
	if err != nil {
		return nil, fmt.Errorf("[NewGoogleProvider] failed to create OIDC provider: %w", err)
	}

	return &GoogleProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GetGoogleClientID(),
			ClientSecret: cfg.GetGoogleClientSecret(),
			Endpoint:     provider.Endpoint(),
			RedirectURL:  redirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{
			ClientID: cfg.GetGoogleClientID(),
		}),
	}, nil
}

func (g *GoogleProvider) AuthCodeURL(state, nonce string) string {
	return g.oauthConfig.AuthCodeURL(state, oidc.Nonce(nonce))
}

func (g *GoogleProvider) Authenticate(ctx context.Context, code, nonce string) (*Profile, error) {
	oauth2Token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("[Authenticate] token exchange failed: %w", err)
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return nil, errors.New("[Authenticate] no ID token in response")
	}

	// Verify the ID token signature and claims (including nonce)
	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("[Authenticate] ID token verification failed: %w", err)
	}

	var claims struct {
		Nonce   string `json:"nonce"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("[Authenticate] failed to extract claims: %w", err)
	}

	// Validate nonce to prevent replay attacks
	if claims.Nonce != nonce {
		return nil, errors.New("[Authenticate] invalid nonce")
	}

	if claims.Email == "" {
		return nil, errors.New("[Authenticate] provider returned no email")
	}

	return &Profile{
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.Picture,
	}, nil
}
