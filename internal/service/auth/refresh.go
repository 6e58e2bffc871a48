package auth

import (
	"context"
	"errors"
	"time"

	"civic_backend/internal/model"
	"civic_backend/pkg/token"
)

// Refresh - mints a new access token for a live session.
// The refresh token itself is not rotated; it stays valid until the
// session expires or is logged out. Concurrent refreshes for the same
// session are tolerated, each one just records the latest jti.
func (s *serv) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := s.sessionRepo.GetByRefreshHash(ctx, token.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrExpiredOrInvalidRefreshToken
		}
		return "", err
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
			s.log.Warn().Err(err).Msg("delete expired session")
		}
		return "", model.ErrExpiredOrInvalidRefreshToken
	}

	orgID := ""
	if session.OrgID != nil {
		orgID = session.OrgID.String()
	}

	newAccessToken, jti, err := token.GenerateAccessToken(
		session.UserID,
		orgID,
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	err = s.sessionRepo.UpdateAccessJTI(ctx, session.ID, jti)
	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}
