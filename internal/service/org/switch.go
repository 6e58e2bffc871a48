package org

import (
	"context"
	"errors"

	"civic_backend/internal/model"
	"civic_backend/pkg/token"

	"github.com/google/uuid"
)

// Switch - moves the caller's active organization context to another
// organization they are a member of. Returns a fresh access token carrying
// the new org claim.
func (s *serv) Switch(ctx context.Context, userID uuid.UUID, refreshToken string, orgID uuid.UUID) (string, error) {
	session, err := s.sessionRepo.GetByRefreshHash(ctx, token.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrExpiredOrInvalidRefreshToken
		}
		return "", err
	}
	if session.UserID != userID {
		return "", model.ErrUnauthenticated
	}

	isMember, err := s.orgRepo.IsMember(ctx, orgID, userID)
	if err != nil {
		return "", err
	}
	if !isMember {
		return "", model.ErrNotMember
	}

	err = s.sessionRepo.UpdateOrg(ctx, session.ID, orgID)
	if err != nil {
		return "", err
	}

	accessToken, jti, err := token.GenerateAccessToken(
		userID,
		orgID.String(),
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	err = s.sessionRepo.UpdateAccessJTI(ctx, session.ID, jti)
	if err != nil {
		return "", err
	}

	return accessToken, nil
}

// ListForUser - organizations the user belongs to.
func (s *serv) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	return s.orgRepo.ListForUser(ctx, userID)
}
