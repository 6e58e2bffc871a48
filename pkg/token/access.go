package token

import (
	"errors"
	"fmt"
	"time"

	"civic_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const typeAccess = "access"

// GenerateAccessToken - mints a signed HS256 access token for the user.
// orgID is empty while the user has no active organization context.
// Returns the signed token and its jti.
func GenerateAccessToken(userID uuid.UUID, orgID string, secretKey []byte, ttl time.Duration) (string, string, error) {
	now := time.Now()
	jti := uuid.NewString()

	claims := model.UserClaims{
		OrgID:     orgID,
		TokenType: typeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", "", err
	}

	return signed, jti, nil
}

// VerifyToken - checks the signature and expiry of an access token.
// Pure signature check, no store round-trip.
func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if claims.TokenType != typeAccess {
		return nil, errors.New("not an access token")
	}

	return claims, nil
}
