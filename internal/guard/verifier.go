package guard

import "civic_backend/pkg/token"

// JWTVerifier - TokenVerifier over the signing secret. Stateless.
type JWTVerifier struct {
	Secret []byte
}

func (v JWTVerifier) VerifyAccessToken(tokenStr string) error {
	_, err := token.VerifyToken(tokenStr, v.Secret)
	return err
}
