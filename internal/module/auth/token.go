package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gustavods/storefront/internal/domain"
)

// Claims is the JWT payload: the minimal user identity plus standard expiry.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Generate(user domain.AuthUser) (string, error)
	Parse(raw string) (domain.AuthUser, error)
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService signing HS256 tokens with the given
// secret and expiry.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	return &tokenService{secret: []byte(secret), expiry: expiry}
}

// Generate signs a token carrying the user identity, valid for the configured expiry.
func (s *tokenService) Generate(user domain.AuthUser) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of raw and returns the embedded
// identity. Any failure maps to a 401 "Invalid token".
func (s *tokenService) Parse(raw string) (domain.AuthUser, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.AuthUser{}, domain.NewAppError(domain.CodeUnauthorized, "Invalid token", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.AuthUser{}, domain.NewAppError(domain.CodeUnauthorized, "Invalid token", nil)
	}

	return domain.AuthUser{ID: claims.ID, Email: claims.Email}, nil
}
