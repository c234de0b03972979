package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	memberadapters "hackathon_backend/internal/feature/member/adapters"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/platform/cache"
	"hackathon_backend/internal/platform/session"
)

// NewRefreshTokenRepository creates a RefreshTokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewRefreshTokenRepository(rdb *redis.Client, db *gorm.DB, prefix string, ttl time.Duration) usecase.RefreshTokenRepository {
	if rdb != nil {
		return session.NewRefreshTokenRedis(rdb, prefix, ttl)
	}
	return memberadapters.NewRefreshTokenGorm(db)
}

// NewMemberRepository returns the database repository, wrapped with a Redis
// cache when Redis is available.
func NewMemberRepository(rdb *redis.Client, db *gorm.DB, cacheTTL time.Duration) usecase.MemberRepository {
	repo := memberadapters.NewMemberGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingMemberRepository(rdb, cacheTTL, repo, "members")
}
