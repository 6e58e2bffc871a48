package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// SendOTP - issues a one-time code for the phone number and hands it to the sender.
// Re-sending overwrites the previous code.
func (s *serv) SendOTP(ctx context.Context, phone string) error {
	code, err := generateOTP(s.otpCfg.OTPLength())
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	err = s.otpStore.Set(ctx, phone, code, s.otpCfg.OTPTTL())
	if err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	return s.sender.Send(ctx, phone, code)
}

func generateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
