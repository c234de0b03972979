package di

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"hackathon_backend/internal/app/router"
	memberadapters "hackathon_backend/internal/feature/member/adapters"
	memberhandler "hackathon_backend/internal/feature/member/transport/handler"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/platform/config"
	"hackathon_backend/internal/platform/db"
	"hackathon_backend/internal/platform/http/handler"
	"hackathon_backend/internal/platform/http/middleware"
	jwtmw "hackathon_backend/internal/platform/jwt"
	"hackathon_backend/internal/platform/metrics"
	infraredis "hackathon_backend/internal/platform/redis"
)

// NewApp wires repositories, the login usecase and handlers into a router.
// rdb may be nil.
func NewApp(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client, provider usecase.SocialProvider, m *metrics.Metrics) *gin.Engine {
	members := NewMemberRepository(rdb, gdb, cfg.Redis.MemberCacheTTL)
	socialTokens := memberadapters.NewSocialAccessTokenGorm(gdb)
	refreshTokens := NewRefreshTokenRepository(rdb, gdb, cfg.Redis.KeyPrefix, cfg.JWT.RefreshTTL)
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	loginUC := usecase.NewKakaoLoginUsecase(provider, members, socialTokens, refreshTokens, tokens, usecase.Options{
		PersistRefreshToken: cfg.Auth.PersistRefreshToken,
	})

	checks := map[string]handler.Check{"db": db.Ping(gdb)}
	if rdb != nil {
		checks["redis"] = infraredis.Ping(rdb)
	}

	var recorder memberhandler.LoginRecorder
	if m != nil {
		recorder = m
	}

	return router.NewRouter(router.Handlers{
		Health: handler.NewHealthHandler(checks),
		Kakao:  memberhandler.NewKakaoHandler(loginUC, recorder),
		Member: memberhandler.NewMemberHandler(loginUC),
	}, router.Options{
		JWTSecret:    cfg.JWT.Secret,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		LoginLimiter: middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.LoginRPS), cfg.RateLimit.LoginBurst),
		Metrics:      m,
	})
}
