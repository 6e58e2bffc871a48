package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"civic_backend/internal/model"
	"civic_backend/pkg/pass"
	"civic_backend/pkg/token"

	"github.com/google/uuid"
)

// Register - verifies the signup OTP, creates the user and opens a session.
// User and session are created in one transaction.
func (s *serv) Register(ctx context.Context, user *model.User, otpCode string) (*model.AuthData, error) {
	ok, err := s.otpStore.Verify(ctx, user.Phone, otpCode)
	if err != nil {
		return nil, fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		return nil, model.ErrInvalidOTP
	}

	if existing, err := s.userRepo.GetByLogin(ctx, user.Login); err == nil && existing != nil {
		return nil, model.ErrAlreadyExists
	} else if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	if existing, err := s.userRepo.GetByPhone(ctx, user.Phone); err == nil && existing != nil {
		return nil, model.ErrAlreadyExists
	} else if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var (
		refreshToken string
		accessToken  string
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}

		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		var jti string
		accessToken, jti, err = token.GenerateAccessToken(
			user.ID,
			"",
			s.jwtCfg.AccessTokenSecretKey(),
			s.jwtCfg.AccessTokenDuration())
		if err != nil {
			return err
		}

		return s.sessionRepo.Create(ctx, &model.Session{
			ID:          uuid.New(),
			UserID:      user.ID,
			RefreshHash: token.HashRefreshToken(refreshToken),
			AccessJTI:   jti,
			ExpiresAt:   time.Now().Add(s.jwtCfg.RefreshTokenDuration()),
		})
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	}, nil
}
