package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GuardConfig - static route table for the edge guard.
// Classification is derived from this table only, never from runtime state.
type GuardConfig interface {
	LoginPath() string
	OnboardingPath() string
	DashboardPath() string
	RedirectParam() string

	ProtectedPaths() []string
	UnauthenticatedOnlyPaths() []string
	OrgCreationPaths() []string
	PublicPaths() []string
	ExcludedPrefixes() []string
}

type OTPConfig interface {
	OTPLength() int
	OTPTTL() time.Duration
}
