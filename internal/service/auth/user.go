package auth

import (
	"context"

	"civic_backend/internal/model"

	"github.com/google/uuid"
)

// GetUser - profile lookup for the authenticated user.
func (s *serv) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
