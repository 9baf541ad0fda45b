package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-learning/axis-server/internal/config"
	"github.com/axis-learning/axis-server/server"
	"github.com/axis-learning/axis-server/session"
	"github.com/axis-learning/axis-server/users"
	fakeuserrepo "github.com/axis-learning/axis-server/users/repofake"
)

const (
	testEmail = "john.doe@example.com"
	testName  = "John Doe"
)

// testConfig composes the real config parts; the session secret comes from
// the environment via t.Setenv in setupServer.
type testConfig struct {
	config.EnvVars
	config.OAuth
	config.Security
}

var _ config.Config = testConfig{}

// fakeProvider satisfies session.IdentityProvider without network calls
type fakeProvider struct {
	profile *session.Profile
	err     error
}

func (p *fakeProvider) AuthCodeURL(state, nonce string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (p *fakeProvider) Authenticate(ctx context.Context, code, nonce string) (*session.Profile, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.profile, nil
}

type serverFixture struct {
	server   *server.Server
	repo     *fakeuserrepo.FakeUserRepo
	provider *fakeProvider
	sessions *session.Manager
}

func setupServer(t *testing.T) *serverFixture {
	t.Helper()
	t.Setenv("SESSION_SECRET", "handler-test-secret")

	repo := fakeuserrepo.NewFakeUserRepo()
	provider := &fakeProvider{
		profile: &session.Profile{Email: testEmail, Name: testName, ImageURL: "https://example.com/a.png"},
	}

	cfg := testConfig{}
	srv, err := server.New(cfg, repo, provider)
	require.NoError(t, err)

	// A parallel manager with the same config mints cookies for the tests
	sessions, err := session.NewManager(repo, cfg)
	require.NoError(t, err)

	return &serverFixture{server: srv, repo: repo, provider: provider, sessions: sessions}
}

func (f *serverFixture) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := f.sessions.IssueToken(&users.User{Email: testEmail, Name: testName, Role: users.RoleUser})
	require.NoError(t, err)
	return &http.Cookie{Name: "axis_session", Value: token}
}

func (f *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestDashboardUnauthenticatedRedirectsToLogin(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	assert.NotContains(t, rec.Body.String(), "tab-panel", "no tab may render before authentication")
}

func TestDashboardAuthenticatedRendersTabs(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(f.sessionCookie(t))
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, testName)
	for _, id := range []string{"tab-dashboard", "tab-learning-path", "tab-quizzes", "tab-settings"} {
		assert.Contains(t, body, id)
	}
}

func TestDashboardRejectsGarbageToken(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "axis_session", Value: "not-a-token"})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func TestLoginPageRendersSignInControl(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/auth/login/google")
}

func TestLoginPageShowsDeniedError(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/login?error=Sign-in+failed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign-in failed")
}

func TestLoginPageRedirectsResolvedSession(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.AddCookie(f.sessionCookie(t))
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestInitiateSignInRedirectsToProvider(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/login/google", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://accounts.example.com/"))

	names := cookieNames(rec.Result().Cookies())
	assert.Contains(t, names, "auth_state")
	assert.Contains(t, names, "auth_nonce")
}

func TestCallbackProviderErrorDeniesSignIn(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/callback?error=access_denied", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/auth/login?error="))
	assert.Equal(t, 0, f.repo.Count())
}

func TestCallbackStateMismatchDeniesSignIn(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=tampered", nil)
	req.AddCookie(&http.Cookie{Name: "auth_state", Value: "original"})
	req.AddCookie(&http.Cookie{Name: "auth_nonce", Value: "n1"})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/auth/login?error="))
	assert.Equal(t, 0, f.repo.Count())
}

func TestCallbackSuccessEstablishesSession(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "auth_state", Value: "s1"})
	req.AddCookie(&http.Cookie{Name: "auth_nonce", Value: "n1"})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, 1, f.repo.Count(), "first sign-in creates exactly one record")

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "axis_session" && c.Value != "" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "callback must issue a session cookie")

	// The issued cookie opens the dashboard
	dashReq := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	dashReq.AddCookie(sessionCookie)
	dashRec := f.do(dashReq)
	assert.Equal(t, http.StatusOK, dashRec.Code)
}

func TestCallbackPersistenceFailureDeniesSignIn(t *testing.T) {
	f := setupServer(t)
	f.repo.GetErr = assert.AnError

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "auth_state", Value: "s1"})
	req.AddCookie(&http.Cookie{Name: "auth_nonce", Value: "n1"})
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/auth/login?error="))
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	f := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/logout?callbackUrl=/", nil)
	req.AddCookie(f.sessionCookie(t))
	rec := f.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == "axis_session" {
			assert.Less(t, c.MaxAge, 0, "session cookie must be discarded")
		}
	}
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLogoutRejectsExternalCallbackTarget(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/logout?callbackUrl=https://evil.example.com", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestHealthEndpoint(t *testing.T) {
	f := setupServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func cookieNames(cookies []*http.Cookie) []string {
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	return names
}
