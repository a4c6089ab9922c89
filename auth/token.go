package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/anirudh21-ch/elearn/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, expired.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// Claims are the identity data embedded in a session token. They are a
// snapshot of the user row at issuance time and are never refreshed
// against the store.
type Claims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as a numeric id, or 0 if it does
// not parse.
func (c *Claims) UserID() uint {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// TokenService issues and verifies HS256 session tokens. Tokens are
// stateless: nothing is persisted and there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service signing with the given secret.
// A ttl of zero means the default 24h lifetime.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// NewTokenServiceFromEnv reads JWT_SECRET and TOKEN_TTL. Falls back to
// a dev secret so the server still comes up locally.
func NewTokenServiceFromEnv() *TokenService {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		secret = []byte("default-dev-secret-change-me")
	}

	var ttl time.Duration
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}

	return NewTokenService(secret, ttl)
}

// Issue creates a signed token for the user. Claims carry the user id
// as the subject plus username and role.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, structure and expiry. It never consults the
// store, so a role change after issuance is not reflected here.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyOptional is Verify for endpoints that accept anonymous callers:
// an absent or invalid token yields nil rather than an error.
func (s *TokenService) VerifyOptional(tokenString string) *Claims {
	if tokenString == "" {
		return nil
	}
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil
	}
	return claims
}
