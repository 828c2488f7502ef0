package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries the identity provider's user id in Subject.
type JWTClaims struct {
	jwt.RegisteredClaims
	Handle string `json:"handle"`
}
