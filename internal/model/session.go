package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrgID       *uuid.UUID
	RefreshHash string
	AccessJTI   string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the session can no longer mint access tokens.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
