// Package router assembles the gin engine and its routes.
package router

import (
	"github.com/gin-gonic/gin"

	memberhandler "hackathon_backend/internal/feature/member/transport/handler"
	"hackathon_backend/internal/platform/http/handler"
	"hackathon_backend/internal/platform/http/middleware"
	jwtmw "hackathon_backend/internal/platform/jwt"
	"hackathon_backend/internal/platform/metrics"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health *handler.HealthHandler
	Kakao  *memberhandler.KakaoHandler
	Member *memberhandler.MemberHandler
}

// Options configures the cross-cutting middlewares.
type Options struct {
	JWTSecret    string
	CORSOrigins  []string
	LoginLimiter *middleware.IPRateLimiter
	Metrics      *metrics.Metrics
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(
		middleware.CORS(opts.CORSOrigins, memberhandler.HeaderAccessToken, memberhandler.HeaderRefreshToken),
		middleware.ErrorHandler(),
	)

	// no authentication
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	members := r.Group("/api/members")

	login := members.Group("/kakao")
	if opts.LoginLimiter != nil {
		login.Use(middleware.RateLimit(opts.LoginLimiter))
	}
	login.GET("/callback", h.Kakao.Login)

	// access token required
	auth := members.Group("")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.GET("/me", h.Member.Me)
	}

	return r
}
