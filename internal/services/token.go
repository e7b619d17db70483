package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/prism-backend/internal/platform/logger"
)

// TokenService mints and verifies the bearer tokens that scope a caller to a
// single assessment session. There are no user accounts; holding a valid
// token for a session is the whole authorization model.
type TokenService interface {
	Mint(sessionID uuid.UUID) (string, error)
	Parse(tokenString string) (uuid.UUID, error)
}

type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type tokenService struct {
	log       *logger.Logger
	secretKey string
	ttl       time.Duration
}

func NewTokenService(log *logger.Logger, secretKey string, ttl time.Duration) TokenService {
	return &tokenService{
		log:       log.With("service", "TokenService"),
		secretKey: secretKey,
		ttl:       ttl,
	}
}

func (s *tokenService) Mint(sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *tokenService) Parse(tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id in token: %w", err)
	}
	return id, nil
}
