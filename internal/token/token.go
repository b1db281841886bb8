// Package token issues and verifies signed bearer tokens for API sessions.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vkurdin/study-organizer/internal/errs"
)

// Claims is the token payload: the authenticated user plus standard expiry fields.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens with a fixed TTL.
type Manager struct {
	signKey []byte
	ttl     time.Duration
}

// NewManager constructs a Manager with the given signing key and token TTL.
func NewManager(signKey []byte, ttl time.Duration) *Manager {
	return &Manager{signKey: signKey, ttl: ttl}
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.signKey)
}

// Verify parses and validates a token string and returns its claims.
// Any parse, signature or expiry failure yields errs.ErrUnauthorized.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.signKey, nil
	})
	if err != nil || !tok.Valid {
		return nil, errs.ErrUnauthorized
	}
	return &claims, nil
}
