package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed session lifetime. There is no refresh
// mechanism; clients request a new token when this one expires.
const tokenTTL = 2 * time.Hour

// TokenClaims carries the decoded identity of an authenticated request.
type TokenClaims struct {
	Email string
}

type AuthService struct {
	jwtSecret string
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{jwtSecret: jwtSecret}
}

// IssueToken signs the caller-supplied claims payload (expected to
// include at least an email) with a 2-hour expiry.
func (s *AuthService) IssueToken(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies signature and expiry and returns the decoded
// claims. Any failure maps to 401 upstream.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return nil, errors.New("invalid token claims")
		}
		return &TokenClaims{Email: email}, nil
	}

	return nil, errors.New("invalid token")
}
