package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented token fails verification
// for any reason, including expiry.
var ErrInvalidToken = errors.New("token is invalid")

// tokenTTL is how long an issued office session token stays valid.
const tokenTTL = 24 * time.Hour

// tokenClaims is the claims shape carried by office session tokens.
type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenService issues and verifies HS256 session tokens for the office
// dashboard.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue creates a signed token for the authenticated username.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token and returns the username it was issued to.
// Expired, malformed, or foreign-signed tokens all yield ErrInvalidToken.
func (s *TokenService) Parse(tokenString string) (string, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Username == "" {
		return "", fmt.Errorf("%w: username claim is missing", ErrInvalidToken)
	}
	return claims.Username, nil
}
