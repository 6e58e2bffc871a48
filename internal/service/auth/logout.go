package auth

import (
	"context"
	"errors"
	"time"

	"civic_backend/internal/model"
	"civic_backend/pkg/token"
)

// Logout - closes the session and revokes the outstanding access token.
// An already-closed session logs out cleanly; logout is idempotent.
func (s *serv) Logout(ctx context.Context, refreshToken string, accessToken string) error {
	session, err := s.sessionRepo.GetByRefreshHash(ctx, token.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return err
	}

	err = s.sessionRepo.Delete(ctx, session.ID)
	if err != nil {
		return err
	}

	// Blocklist whatever access token the client still holds; fall back to
	// the last jti the session recorded when the cookie is gone.
	jti := session.AccessJTI
	ttl := s.jwtCfg.AccessTokenDuration()
	if accessToken != "" {
		claims, err := token.VerifyToken(accessToken, s.jwtCfg.AccessTokenSecretKey())
		if err == nil {
			jti = claims.ID
			ttl = time.Until(claims.ExpiresAt.Time)
		}
	}

	err = s.blocklist.Block(ctx, jti, ttl)
	if err != nil {
		s.log.Warn().Err(err).Str("jti", jti).Msg("blocklist access token")
	}

	return nil
}
