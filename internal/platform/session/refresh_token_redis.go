// Package session stores issued refresh tokens in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

// RefreshTokenRedis implements usecase.RefreshTokenRepository using Redis.
// One key per account email; the key expires with the refresh token.
type RefreshTokenRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ usecase.RefreshTokenRepository = (*RefreshTokenRedis)(nil)

// NewRefreshTokenRedis creates a new RefreshTokenRedis instance.
func NewRefreshTokenRedis(client *redis.Client, prefix string, ttl time.Duration) *RefreshTokenRedis {
	return &RefreshTokenRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// tokenKey returns the Redis key for an account's refresh token. The email is
// used as stored on the member, without case folding.
func (r *RefreshTokenRedis) tokenKey(email string) string {
	return fmt.Sprintf("%s:%s", r.prefix, email)
}

// FindByAccountEmail returns the stored refresh token of the account.
func (r *RefreshTokenRedis) FindByAccountEmail(ctx context.Context, email string) (*entity.RefreshToken, error) {
	token, err := r.client.Get(ctx, r.tokenKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &entity.RefreshToken{Token: token, AccountEmail: email}, nil
}

// Save stores the token, replacing any previous one and resetting the TTL.
func (r *RefreshTokenRedis) Save(ctx context.Context, token *entity.RefreshToken) error {
	if token.AccountEmail == "" {
		return errors.New("refresh token has no account email")
	}
	return r.client.Set(ctx, r.tokenKey(token.AccountEmail), token.Token, r.ttl).Err()
}
