// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"hackathon_backend/internal/platform/config"
	"hackathon_backend/internal/platform/externalapi/kakao"
	infrahttp "hackathon_backend/internal/platform/http"
	"hackathon_backend/internal/shared/ratelimiter"
)

// NewKakaoClient creates a fully configured Kakao client with its HTTP client.
func NewKakaoClient(cfg config.Kakao) *kakao.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	client := kakao.NewClient(kakao.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		TokenURI:     cfg.TokenURI,
		UserInfoURI:  cfg.UserInfoURI,
		Timeout:      cfg.Timeout,
	}, httpClient)
	if cfg.MaxCallsPerMinute > 0 {
		client.WithLimiter(ratelimiter.NewRateLimiter(cfg.MaxCallsPerMinute, time.Minute))
	}
	return client
}
