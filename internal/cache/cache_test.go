package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestOTPVerifyConsumesCode(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewOTPStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+1555000111", "482913", 5*time.Minute))

	ok, err := store.Verify(ctx, "+1555000111", "482913")
	require.NoError(t, err)
	assert.True(t, ok)

	// Codes are single use.
	ok, err = store.Verify(ctx, "+1555000111", "482913")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPVerifyWrongCode(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewOTPStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+1555000111", "482913", 5*time.Minute))

	ok, err := store.Verify(ctx, "+1555000111", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// A wrong guess does not consume the code.
	ok, err = store.Verify(ctx, "+1555000111", "482913")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOTPExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewOTPStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "+1555000111", "482913", time.Minute))

	mr.FastForward(2 * time.Minute)

	ok, err := store.Verify(ctx, "+1555000111", "482913")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPMissingPhone(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := NewOTPStore(rdb)

	ok, err := store.Verify(context.Background(), "+1999999999", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlocklistBlockAndExpire(t *testing.T) {
	mr, rdb := newTestRedis(t)
	bl := NewBlocklist(rdb)
	ctx := context.Background()

	blocked, err := bl.IsBlocked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, bl.Block(ctx, "jti-1", time.Minute))

	blocked, err = bl.IsBlocked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blocked)

	// The entry lives only as long as the token would have.
	mr.FastForward(2 * time.Minute)

	blocked, err = bl.IsBlocked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestBlocklistNonPositiveTTLIsNoop(t *testing.T) {
	_, rdb := newTestRedis(t)
	bl := NewBlocklist(rdb)
	ctx := context.Background()

	require.NoError(t, bl.Block(ctx, "jti-expired", 0))
	require.NoError(t, bl.Block(ctx, "jti-expired", -time.Second))

	blocked, err := bl.IsBlocked(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, blocked)
}
