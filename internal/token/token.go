// Package token issues and verifies the signed bearer tokens used to
// authenticate API requests.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken indicates a token that is missing, malformed, expired,
// or signed with a different secret.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user id inside a JWT.
type Claims struct {
	// UserID is the id of the user the token was issued to.
	UserID int64 `json:"userid"`
	jwt.StandardClaims
}

// Manager issues and verifies HS256-signed bearer tokens with a fixed
// process-wide secret and lifetime.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager signing with secret; issued tokens expire
// after ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user id.
func (m *Manager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token string.
// Returns the embedded claims, or ErrInvalidToken if the token cannot be
// verified.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
