package auth

import (
	"context"
	"fmt"

	"civic_backend/internal/model"
	"civic_backend/pkg/token"

	"github.com/google/uuid"
)

// Validate - stateless access token check plus a blocklist probe on the jti.
// Never touches the relational store; this runs on every API request.
func (s *serv) Validate(ctx context.Context, accessToken string) (*model.Identity, error) {
	claims, err := token.VerifyToken(accessToken, s.jwtCfg.AccessTokenSecretKey())
	if err != nil {
		return nil, model.ErrUnauthenticated
	}

	blocked, err := s.blocklist.IsBlocked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("blocklist check: %w", err)
	}
	if blocked {
		return nil, model.ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, model.ErrUnauthenticated
	}

	identity := &model.Identity{
		UserID: userID,
		JTI:    claims.ID,
	}

	if claims.OrgID != "" {
		orgID, err := uuid.Parse(claims.OrgID)
		if err != nil {
			return nil, model.ErrUnauthenticated
		}
		identity.OrgID = &orgID
	}

	return identity, nil
}
