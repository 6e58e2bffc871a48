package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"civic_backend/internal/cache"
	"civic_backend/internal/model"
	"civic_backend/internal/repository"
	"civic_backend/internal/service"
	"civic_backend/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	stored := *user
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, model.ErrNotFound
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Login == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*model.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.ID] = &stored
	return nil
}

func (r *fakeSessionRepo) GetByRefreshHash(_ context.Context, refreshHash string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.RefreshHash == refreshHash {
			copied := *session
			return &copied, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *fakeSessionRepo) UpdateAccessJTI(_ context.Context, id uuid.UUID, accessJTI string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.AccessJTI = accessJTI
	}
	return nil
}

func (r *fakeSessionRepo) UpdateOrg(_ context.Context, id uuid.UUID, orgID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.OrgID = &orgID
	}
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeSessionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *fakeSessionRepo) any() *model.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		copied := *session
		return &copied
	}
	return nil
}

type fakeJWTConfig struct{}

func (fakeJWTConfig) AccessTokenSecretKey() []byte { return []byte("unit-test-secret") }
func (fakeJWTConfig) AccessTokenDuration() time.Duration { return 15 * time.Minute }
func (fakeJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

type fakeOTPConfig struct{}

func (fakeOTPConfig) OTPLength() int { return 6 }
func (fakeOTPConfig) OTPTTL() time.Duration { return 5 * time.Minute }

type captureSender struct {
	mu    sync.Mutex
	phone string
	code  string
}

func (s *captureSender) Send(_ context.Context, phone string, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phone = phone
	s.code = code
	return nil
}

type testEnv struct {
	serv        service.AuthService
	userRepo    *fakeUserRepo
	sessionRepo *fakeSessionRepo
	otpStore    *cache.OTPStore
	sender      *captureSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	env := &testEnv{
		userRepo:    newFakeUserRepo(),
		sessionRepo: newFakeSessionRepo(),
		otpStore:    cache.NewOTPStore(rdb),
		sender:      &captureSender{},
	}
	env.serv = NewService(
		fakeTxManager{},
		env.userRepo,
		env.sessionRepo,
		env.otpStore,
		cache.NewBlocklist(rdb),
		env.sender,
		fakeJWTConfig{},
		fakeOTPConfig{},
		zerolog.Nop(),
	)
	return env
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

func registerTestUser(t *testing.T, env *testEnv) *model.AuthData {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, env.serv.SendOTP(ctx, "+1555000111"))

	data, err := env.serv.Register(ctx, &model.User{
		Name:     "Asha",
		Login:    "asha@example.com",
		Phone:    "+1555000111",
		Password: "s3cret-pass",
	}, env.sender.code)
	require.NoError(t, err)
	return data
}

func TestSendOTPDeliversStoredCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.serv.SendOTP(ctx, "+1555000111"))

	assert.Equal(t, "+1555000111", env.sender.phone)
	assert.Len(t, env.sender.code, 6)

	ok, err := env.otpStore.Verify(ctx, "+1555000111", env.sender.code)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterIssuesTokensAndSession(t *testing.T) {
	env := newTestEnv(t)

	data := registerTestUser(t, env)

	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.NotEqual(t, uuid.Nil, data.UserID)
	assert.Equal(t, 1, env.sessionRepo.count())

	// Password never stored in the clear.
	user, err := env.userRepo.GetByID(context.Background(), data.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	identity, err := env.serv.Validate(context.Background(), data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, data.UserID, identity.UserID)
	assert.Nil(t, identity.OrgID)
}

func TestRegisterRejectsBadOTP(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.serv.SendOTP(ctx, "+1555000111"))

	_, err := env.serv.Register(ctx, &model.User{
		Name:     "Asha",
		Login:    "asha@example.com",
		Phone:    "+1555000111",
		Password: "s3cret-pass",
	}, "000000")
	assert.ErrorIs(t, err, model.ErrInvalidOTP)
	assert.Equal(t, 0, env.sessionRepo.count())
}

func TestRegisterRejectsDuplicateLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerTestUser(t, env)

	require.NoError(t, env.serv.SendOTP(ctx, "+1555000222"))
	_, err := env.serv.Register(ctx, &model.User{
		Name:     "Asha Again",
		Login:    "asha@example.com",
		Phone:    "+1555000222",
		Password: "another-pass",
	}, env.sender.code)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerTestUser(t, env)

	// Same phone, different login: rejected before any row is written.
	require.NoError(t, env.serv.SendOTP(ctx, "+1555000111"))
	_, err := env.serv.Register(ctx, &model.User{
		Name:     "Asha Again",
		Login:    "asha2@example.com",
		Phone:    "+1555000111",
		Password: "another-pass",
	}, env.sender.code)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
	assert.Equal(t, 1, env.sessionRepo.count())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	registerTestUser(t, env)
	ctx := context.Background()

	data, err := env.serv.Login(ctx, "asha@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)

	_, err = env.serv.Login(ctx, "asha@example.com", "wrong-pass")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = env.serv.Login(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	env := newTestEnv(t)
	data := registerTestUser(t, env)
	ctx := context.Background()

	newAccess, err := env.serv.Refresh(ctx, data.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newAccess)

	identity, err := env.serv.Validate(ctx, newAccess)
	require.NoError(t, err)
	assert.Equal(t, data.UserID, identity.UserID)

	// The session records the latest jti.
	session := env.sessionRepo.any()
	require.NotNil(t, session)
	assert.Equal(t, identity.JTI, session.AccessJTI)
}

func TestRefreshUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.serv.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, model.ErrExpiredOrInvalidRefreshToken)
}

func TestRefreshExpiredSession(t *testing.T) {
	env := newTestEnv(t)
	data := registerTestUser(t, env)
	ctx := context.Background()

	session := env.sessionRepo.any()
	require.NotNil(t, session)
	session.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, env.sessionRepo.Create(ctx, session))

	_, err := env.serv.Refresh(ctx, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrExpiredOrInvalidRefreshToken)

	// The dead session is gone; a second refresh fails the same way.
	_, err = env.serv.Refresh(ctx, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrExpiredOrInvalidRefreshToken)
}

func TestRefreshCarriesOrgClaim(t *testing.T) {
	env := newTestEnv(t)
	data := registerTestUser(t, env)
	ctx := context.Background()

	orgID := uuid.New()
	session := env.sessionRepo.any()
	require.NotNil(t, session)
	require.NoError(t, env.sessionRepo.UpdateOrg(ctx, session.ID, orgID))

	newAccess, err := env.serv.Refresh(ctx, data.RefreshToken)
	require.NoError(t, err)

	identity, err := env.serv.Validate(ctx, newAccess)
	require.NoError(t, err)
	require.NotNil(t, identity.OrgID)
	assert.Equal(t, orgID, *identity.OrgID)
}

func TestLogoutRevokesSessionAndAccessToken(t *testing.T) {
	env := newTestEnv(t)
	data := registerTestUser(t, env)
	ctx := context.Background()

	require.NoError(t, env.serv.Logout(ctx, data.RefreshToken, data.AccessToken))

	// The access token is revoked even though its signature still verifies.
	_, err := env.serv.Validate(ctx, data.AccessToken)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = env.serv.Refresh(ctx, data.RefreshToken)
	assert.ErrorIs(t, err, model.ErrExpiredOrInvalidRefreshToken)

	// Logout is idempotent.
	assert.NoError(t, env.serv.Logout(ctx, data.RefreshToken, data.AccessToken))
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.serv.Validate(ctx, "garbage")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	signed, _, err := token.GenerateAccessToken(uuid.New(), "", []byte("some-other-secret"), time.Minute)
	require.NoError(t, err)

	_, err = env.serv.Validate(ctx, signed)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}
