package org

import (
	"context"
	"errors"

	"civic_backend/internal/model"
	"civic_backend/pkg/token"

	"github.com/google/uuid"
)

// Create - creates an organization with the caller as owner and makes it the
// caller's active organization context. Org, membership and the session update
// commit in one transaction. Returns the org and a fresh access token carrying
// the new org claim.
func (s *serv) Create(ctx context.Context, userID uuid.UUID, refreshToken string, org *model.Organization) (*model.Organization, string, error) {
	session, err := s.sessionRepo.GetByRefreshHash(ctx, token.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, "", model.ErrExpiredOrInvalidRefreshToken
		}
		return nil, "", err
	}
	if session.UserID != userID {
		return nil, "", model.ErrUnauthenticated
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		org.ID, err = s.orgRepo.Create(ctx, org)
		if err != nil {
			return err
		}

		err = s.orgRepo.AddMember(ctx, &model.Membership{
			OrgID:  org.ID,
			UserID: userID,
			Role:   model.RoleOwner,
		})
		if err != nil {
			return err
		}

		return s.sessionRepo.UpdateOrg(ctx, session.ID, org.ID)
	})
	if err != nil {
		return nil, "", err
	}

	accessToken, jti, err := token.GenerateAccessToken(
		userID,
		org.ID.String(),
		s.jwtCfg.AccessTokenSecretKey(),
		s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, "", err
	}

	err = s.sessionRepo.UpdateAccessJTI(ctx, session.ID, jti)
	if err != nil {
		return nil, "", err
	}

	return org, accessToken, nil
}
