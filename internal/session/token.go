package session

import (
	"errors" // Sentinel errors
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is returned for cookies that fail signature or expiry checks
var ErrInvalidToken = errors.New("invalid session token")

// Signer signs session ids into cookie values and verifies them
type Signer struct {
	Secret []byte        // HMAC key
	TTL    time.Duration // Lifetime of issued tokens
}

// Sign wraps a session id in an HS256 token
func (s *Signer) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,                          // Opaque session id
		IssuedAt:  jwt.NewNumericDate(now),            // Issued at current time
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)), // Matches the Redis TTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString(s.Secret)                        // Sign the token with the secret
}

// Parse validates a cookie value and returns the session id it carries
func (s *Signer) Parse(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return s.Secret, nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.ID, nil
}
