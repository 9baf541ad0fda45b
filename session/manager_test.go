package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/axis-learning/axis-server/internal/errors"
	"github.com/axis-learning/axis-server/session"
	"github.com/axis-learning/axis-server/users"
	fakeuserrepo "github.com/axis-learning/axis-server/users/repofake"
)

const (
	testSecret   = "test-signing-secret"
	testEmail    = "john.doe@example.com"
	testName     = "John Doe"
	testImageURL = "https://example.com/avatar.png"
)

// testSecurityConfig satisfies config.SecurityConfig with a fixed secret
type testSecurityConfig struct {
	secret string
}

func (c testSecurityConfig) GetSessionSecret() string            { return c.secret }
func (c testSecurityConfig) GetSessionLifetime() time.Duration   { return 30 * 24 * time.Hour }
func (c testSecurityConfig) GetAuthStateLifetime() time.Duration { return 10 * time.Minute }

type testFixture struct {
	repo    *fakeuserrepo.FakeUserRepo
	manager *session.Manager
	now     time.Time
}

func setupTestFixture(t *testing.T, options ...session.ManagerOption) *testFixture {
	t.Helper()

	f := &testFixture{
		repo: fakeuserrepo.NewFakeUserRepo(),
		now:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	opts := append([]session.ManagerOption{session.WithNowTime(func() time.Time { return f.now })}, options...)

	manager, err := session.NewManager(f.repo, testSecurityConfig{secret: testSecret}, opts...)
	require.NoError(t, err)
	f.manager = manager
	return f
}

func testProfile() session.Profile {
	return session.Profile{
		Email:    testEmail,
		Name:     testName,
		ImageURL: testImageURL,
	}
}

func TestSignInCreatesUserWithDefaults(t *testing.T) {
	f := setupTestFixture(t)

	user, err := f.manager.SignIn(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, testEmail, user.Email)
	assert.Equal(t, testName, user.Name)
	assert.Equal(t, testImageURL, user.ProfileImage)
	assert.Equal(t, users.RoleUser, user.Role)
	assert.Equal(t, 1, f.repo.Count())
}

func TestSignInReusesExistingUser(t *testing.T) {
	f := setupTestFixture(t)

	first, err := f.manager.SignIn(context.Background(), testProfile())
	require.NoError(t, err)

	second, err := f.manager.SignIn(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, f.repo.Count())
}

func TestSignInIdempotentUnderConcurrentFirstSignIn(t *testing.T) {
	f := setupTestFixture(t)

	const callers = 8
	results := make([]*users.User, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.manager.SignIn(context.Background(), testProfile())
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, f.repo.Count(), "concurrent first sign-ins must never produce two records")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
	}
}

func TestSignInDeniedOnLookupFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.repo.GetErr = apperrors.ErrInternal

	_, err := f.manager.SignIn(context.Background(), testProfile())
	require.Error(t, err)
}

func TestSignInDeniedOnCreateFailure(t *testing.T) {
	f := setupTestFixture(t)
	f.repo.CreateErr = apperrors.ErrInternal

	_, err := f.manager.SignIn(context.Background(), testProfile())
	require.Error(t, err)
	assert.Equal(t, 0, f.repo.Count(), "no partial record on a failed sign-in")
}

func TestIssueTokenResolveRoundTrip(t *testing.T) {
	f := setupTestFixture(t)

	user := &users.User{
		Email:        testEmail,
		Name:         testName,
		ProfileImage: testImageURL,
		Role:         users.RoleAdmin,
	}

	token, err := f.manager.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity := f.manager.Resolve(token)
	require.NotNil(t, identity)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, user.Name, identity.Name)
	assert.Equal(t, user.ProfileImage, identity.ProfileImage)
	assert.Equal(t, user.Role, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestResolveExpiredToken(t *testing.T) {
	f := setupTestFixture(t)

	token, err := f.manager.IssueToken(&users.User{Email: testEmail, Role: users.RoleUser})
	require.NoError(t, err)

	// Still valid just before the 30-day expiry
	f.now = f.now.Add(30*24*time.Hour - time.Minute)
	require.NotNil(t, f.manager.Resolve(token))

	// Expired just after, regardless of signature validity
	f.now = f.now.Add(2 * time.Minute)
	assert.Nil(t, f.manager.Resolve(token))
}

func TestResolveRejectsForgedToken(t *testing.T) {
	f := setupTestFixture(t)

	forger, err := session.NewManager(f.repo, testSecurityConfig{secret: "some-other-secret"})
	require.NoError(t, err)

	token, err := forger.IssueToken(&users.User{Email: testEmail, Role: users.RoleAdmin})
	require.NoError(t, err)

	assert.Nil(t, f.manager.Resolve(token))
}

func TestResolveDegradesSilently(t *testing.T) {
	f := setupTestFixture(t)

	// Missing, malformed, and truncated tokens all resolve to "no session"
	assert.Nil(t, f.manager.Resolve(""))
	assert.Nil(t, f.manager.Resolve("not-a-jwt"))

	token, err := f.manager.IssueToken(&users.User{Email: testEmail})
	require.NoError(t, err)
	assert.Nil(t, f.manager.Resolve(token[:len(token)-4]))
}

func TestMissingSecretFailsClosed(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	manager, err := session.NewManager(repo, testSecurityConfig{secret: ""})
	require.NoError(t, err)

	_, err = manager.IssueToken(&users.User{Email: testEmail})
	require.ErrorIs(t, err, apperrors.ErrNoSigningSecret)

	assert.Nil(t, manager.Resolve("any-token"))
}
