package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/RedMake/comavi-auth/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/RedMake/comavi-auth/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(account *domain.Account) (string, time.Time, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	GetExpiry() time.Duration
}

type TokenService struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewTokenService(secret, issuer, audience string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:   secret,
		Issuer:   issuer,
		Audience: audience,
		Expiry:   time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(account *domain.Account) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.Expiry)

	claims := JWTCustomClaims{
		Name:  account.Username,
		Email: account.Email,
		Role:  account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    ts.Issuer,
			Audience:  jwt.ClaimStrings{ts.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) GetExpiry() time.Duration {
	return ts.Expiry
}

// Verify parses and validates the given token string: signature, issuer,
// audience, and expiry with zero leeway. Malformed input returns an error,
// never a panic.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	},
		jwt.WithIssuer(ts.Issuer),
		jwt.WithAudience(ts.Audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
