package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"civic_backend/internal/config"
)

const (
	otpLengthEnvName = "OTP_LENGTH"
	otpTTLEnvName    = "OTP_TTL"
)

type otpConfig struct {
	length int
	ttl    time.Duration
}

func NewOTPConfig() (config.OTPConfig, error) {
	length := 6
	if raw := os.Getenv(otpLengthEnvName); len(raw) != 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 4 || parsed > 10 {
			return nil, fmt.Errorf("invalid otp length: %q", raw)
		}
		length = parsed
	}

	ttl := 5 * time.Minute
	if raw := os.Getenv(otpTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid otp ttl: %w", err)
		}
		ttl = parsed
	}

	return &otpConfig{
		length: length,
		ttl:    ttl,
	}, nil
}

func (cfg *otpConfig) OTPLength() int {
	return cfg.length
}

func (cfg *otpConfig) OTPTTL() time.Duration {
	return cfg.ttl
}
