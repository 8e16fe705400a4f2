package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
)

// JWTProvider issues and verifies locally signed HS256 tokens
type JWTProvider struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTProvider creates a JWTProvider
func NewJWTProvider(secret string, expiry time.Duration) *JWTProvider {
	return &JWTProvider{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue generates a JWT token for a given user
func (p *JWTProvider) Issue(user *models.User) (string, error) {
	now := p.now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ResolveIdentity verifies the token and returns the user ID it was issued for
func (p *JWTProvider) ResolveIdentity(_ context.Context, credential string) (string, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if claims.UserID == 0 {
		return "", ErrInvalidCredential
	}
	return repositories.FormatUserID(claims.UserID), nil
}
