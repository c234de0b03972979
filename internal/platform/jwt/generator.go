package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hackathon_backend/internal/feature/member/domain/entity"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrEmptySecret is returned when the generator has no signing key.
var ErrEmptySecret = errors.New("jwt secret is empty")

// Generator mints HS256 access/refresh token pairs keyed by account email.
type Generator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewGenerator creates a new JWT generator.
func NewGenerator(secret string, accessTTL, refreshTTL time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// GenerateTokenPair creates both tokens for the account.
func (g *Generator) GenerateTokenPair(email string) (entity.TokenPair, error) {
	access, err := g.createToken(email, TokenTypeAccess, g.accessTTL)
	if err != nil {
		return entity.TokenPair{}, err
	}
	refresh, err := g.createToken(email, TokenTypeRefresh, g.refreshTTL)
	if err != nil {
		return entity.TokenPair{}, err
	}
	return entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (g *Generator) createToken(email, tokenType string, ttl time.Duration) (string, error) {
	if len(g.secret) == 0 {
		return "", ErrEmptySecret
	}
	now := g.now()
	claims := jwt.MapClaims{
		"sub":  email,
		"type": tokenType,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
