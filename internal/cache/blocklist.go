package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const blockKeyPrefix = "blocked_jti:"

// Blocklist - access tokens revoked before expiry, keyed by jti.
// Entries live only as long as the token itself would have.
type Blocklist struct {
	rdb *redis.Client
}

func NewBlocklist(rdb *redis.Client) *Blocklist {
	return &Blocklist{rdb: rdb}
}

// Block - marks a jti as revoked for the remaining token lifetime.
// A non-positive ttl means the token is already expired; nothing to store.
func (b *Blocklist) Block(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, blockKeyPrefix+jti, "1", ttl).Err()
}

func (b *Blocklist) IsBlocked(ctx context.Context, jti string) (bool, error) {
	err := b.rdb.Get(ctx, blockKeyPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
