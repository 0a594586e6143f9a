// token.go - JWT issuing and verification

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
)

var (
	// ErrInvalidToken covers missing, malformed, tampered, or
	// wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
)

// TokenService issues and verifies signed identity tokens. The
// signing secret and token lifetime are fixed at construction;
// there is no server-side session state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token carrying the user ID and an expiry of
// now + TTL.
func (s *TokenService) Issue(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,                       // Subject identity
		"exp":     time.Now().Add(s.ttl).Unix(), // Expiration timestamp
	})
	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the
// embedded user ID on success.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Only accept HMAC; rejects "none" and asymmetric methods.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	id, ok := claims["user_id"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
