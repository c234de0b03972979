// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

// CachingMemberRepository decorates a MemberRepository with a Redis cache
// for lookups by email. Misses are never cached.
type CachingMemberRepository struct {
	inner     usecase.MemberRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MemberRepository = (*CachingMemberRepository)(nil)

// cachedMember is the cached form of a member. The password hash stays in the database.
type cachedMember struct {
	AccountID   uint      `json:"accountId"`
	Email       string    `json:"email"`
	AccountName string    `json:"accountName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCached(m *entity.Member) cachedMember {
	return cachedMember{
		AccountID:   m.AccountID,
		Email:       m.Email,
		AccountName: m.AccountName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (c cachedMember) toEntity() *entity.Member {
	return &entity.Member{
		AccountID:   c.AccountID,
		Email:       c.Email,
		AccountName: c.AccountName,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewCachingMemberRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "members".
func NewCachingMemberRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MemberRepository, namespace string) *CachingMemberRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "members"
	}
	return &CachingMemberRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists the member and drops any stale entry for its email.
func (c *CachingMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	if err := c.inner.Create(ctx, member); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(member.Email)).Err()
	}
	return nil
}

// FindByEmail checks the cache first and falls back to the inner repository.
func (c *CachingMemberRepository) FindByEmail(ctx context.Context, email string) (*entity.Member, error) {
	if c.rdb == nil {
		return c.inner.FindByEmail(ctx, email)
	}

	key := c.cacheKey(email)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cm cachedMember
		if err := json.Unmarshal(b, &cm); err == nil {
			return cm.toEntity(), nil
		}
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	m, err := c.inner.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(toCached(m)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return m, nil
}

// cacheKey uses the email verbatim; member emails are case-sensitive.
func (c *CachingMemberRepository) cacheKey(email string) string {
	return fmt.Sprintf("%s:%s", c.namespace, email)
}
