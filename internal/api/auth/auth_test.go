package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"civic_backend/internal/guard"
	"civic_backend/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	loginData  *model.AuthData
	loginErr   error
	refreshed  string
	refreshErr error
}

func (s *fakeAuthService) SendOTP(_ context.Context, _ string) error { return nil }

func (s *fakeAuthService) Register(_ context.Context, _ *model.User, _ string) (*model.AuthData, error) {
	return s.loginData, s.loginErr
}

func (s *fakeAuthService) Login(_ context.Context, _ string, _ string) (*model.AuthData, error) {
	return s.loginData, s.loginErr
}

func (s *fakeAuthService) Refresh(_ context.Context, _ string) (string, error) {
	return s.refreshed, s.refreshErr
}

func (s *fakeAuthService) Validate(_ context.Context, _ string) (*model.Identity, error) {
	return nil, model.ErrUnauthenticated
}

func (s *fakeAuthService) Logout(_ context.Context, _ string, _ string) error { return nil }

func (s *fakeAuthService) GetUser(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return nil, model.ErrNotFound
}

type fakeJWTConfig struct{}

func (fakeJWTConfig) AccessTokenSecretKey() []byte { return []byte("handler-test-secret") }
func (fakeJWTConfig) AccessTokenDuration() time.Duration { return 15 * time.Minute }
func (fakeJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

func newTestHandler(serv *fakeAuthService) *Handler {
	return NewHandler(HandlerDeps{
		Serv:   serv,
		JWTCfg: fakeJWTConfig{},
		Log:    zerolog.Nop(),
	})
}

func cookieByName(t *testing.T, res *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestLoginSetsCookieContract(t *testing.T) {
	userID := uuid.New()
	h := newTestHandler(&fakeAuthService{
		loginData: &model.AuthData{
			AccessToken:  "access-abc",
			RefreshToken: "refresh-abc",
			UserID:       userID,
		},
	})

	body, _ := json.Marshal(map[string]string{"login": "asha@example.com", "password": "pass"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body)))

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)

	access := cookieByName(t, res, guard.CookieAccessToken)
	assert.Equal(t, "access-abc", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, "/", access.Path)

	refresh := cookieByName(t, res, guard.CookieRefreshToken)
	assert.Equal(t, "refresh-abc", refresh.Value)
	assert.True(t, refresh.HttpOnly)

	// user_id is readable by the frontend, so not HttpOnly.
	user := cookieByName(t, res, guard.CookieUserID)
	assert.Equal(t, userID.String(), user.Value)
	assert.False(t, user.HttpOnly)

	var parsed struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&parsed))
	assert.Equal(t, "access-abc", parsed.AccessToken)
	assert.Equal(t, userID.String(), parsed.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newTestHandler(&fakeAuthService{loginErr: model.ErrInvalidCredentials})

	body, _ := json.Marshal(map[string]string{"login": "asha@example.com", "password": "wrong"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body)))

	res := rec.Result()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Empty(t, res.Cookies())
}

func TestRefreshUpdatesAccessCookie(t *testing.T) {
	h := newTestHandler(&fakeAuthService{refreshed: "fresh-access"})

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: guard.CookieRefreshToken, Value: "refresh-abc"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, r)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)

	access := cookieByName(t, res, guard.CookieAccessToken)
	assert.Equal(t, "fresh-access", access.Value)
}

func TestRefreshDeadTokenClearsCookies(t *testing.T) {
	h := newTestHandler(&fakeAuthService{refreshErr: model.ErrExpiredOrInvalidRefreshToken})

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil)
	r.AddCookie(&http.Cookie{Name: guard.CookieRefreshToken, Value: "dead-refresh"})
	rec := httptest.NewRecorder()
	h.Refresh(rec, r)

	res := rec.Result()
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	for _, name := range []string{
		guard.CookieAccessToken,
		guard.CookieRefreshToken,
		guard.CookieUserID,
		guard.CookieOrgID,
	} {
		c := cookieByName(t, res, name)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}

func TestRefreshWithoutCookie(t *testing.T) {
	h := newTestHandler(&fakeAuthService{refreshed: "fresh-access"})

	rec := httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Result().StatusCode)
}

func TestLogoutClearsCookiesWithoutSession(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil))

	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	c := cookieByName(t, res, guard.CookieAccessToken)
	assert.Negative(t, c.MaxAge)
}

func TestRegisterInvalidOTP(t *testing.T) {
	h := newTestHandler(&fakeAuthService{loginErr: model.ErrInvalidOTP})

	body, _ := json.Marshal(map[string]string{
		"name": "Asha", "login": "asha@example.com",
		"phone": "+1555000111", "password": "pass", "otp_code": "000000",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Result().StatusCode)
}
