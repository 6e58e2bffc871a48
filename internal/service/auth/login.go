package auth

import (
	"context"
	"errors"
	"time"

	"civic_backend/internal/model"
	"civic_backend/pkg/pass"
	"civic_backend/pkg/token"

	"github.com/google/uuid"
)

// Login - issues a token pair for valid credentials.
// Unknown login and wrong password both report ErrInvalidCredentials.
func (s *serv) Login(ctx context.Context, login string, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	accessToken, jti, err := token.GenerateAccessToken(
		user.ID,
		"",
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	err = s.sessionRepo.Create(ctx, &model.Session{
		ID:          uuid.New(),
		UserID:      user.ID,
		RefreshHash: token.HashRefreshToken(refreshToken),
		AccessJTI:   jti,
		ExpiresAt:   time.Now().Add(s.jwtCfg.RefreshTokenDuration()),
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
