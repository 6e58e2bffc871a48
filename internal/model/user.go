package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Login     string
	Phone     string
	Password  string
	CreatedAt time.Time
}

type UserClaims struct {
	OrgID     string `json:"org,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity - the result of validating an access token.
// OrgID is nil while the user has no active organization context.
type Identity struct {
	UserID uuid.UUID
	OrgID  *uuid.UUID
	JTI    string
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	UserID       uuid.UUID
	OrgID        *uuid.UUID
}
