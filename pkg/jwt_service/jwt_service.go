package jwtservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/munier-ie/stayonx/internal/api"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
)

var (
	tokenTTL = time.Hour
)

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    tokenTTL,
	}
}

// WithTTL returns a copy issuing tokens valid for ttl.
func (s *JWTService) WithTTL(ttl time.Duration) *JWTService {
	cp := *s
	cp.ttl = ttl
	return &cp
}

// GenerateToken issues a token whose subject is the user id.
func (s *JWTService) GenerateToken(uid uuid.UUID, handle string) (string, error) {
	now := time.Now()
	claims := &api.JWTClaims{
		Handle: handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, errors.New("token parsing error: "+err.Error()))
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
