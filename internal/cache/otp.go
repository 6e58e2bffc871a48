package cache

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// OTPStore - redis-backed one-time codes for phone signup.
// Codes are single use: a successful verify consumes the key.
type OTPStore struct {
	rdb *redis.Client
}

func NewOTPStore(rdb *redis.Client) *OTPStore {
	return &OTPStore{rdb: rdb}
}

func (s *OTPStore) Set(ctx context.Context, phone string, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, otpKeyPrefix+phone, code, ttl).Err()
}

// Verify - compares the submitted code and deletes it on match.
// A missing key or a mismatch both report false without error.
func (s *OTPStore) Verify(ctx context.Context, phone string, code string) (bool, error) {
	key := otpKeyPrefix + phone

	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return false, err
	}

	return true, nil
}
