package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_backend/internal/feature/member/domain/entity"
	memberhandler "hackathon_backend/internal/feature/member/transport/handler"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/platform/http/handler"
	"hackathon_backend/internal/platform/http/middleware"
	jwtmw "hackathon_backend/internal/platform/jwt"
	"hackathon_backend/internal/platform/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubLogin struct{}

func (stubLogin) KakaoLogin(ctx context.Context, code string) (*usecase.LoginResult, error) {
	return &usecase.LoginResult{
		Member: &entity.Member{AccountID: 1, Email: "k_a@b.com", AccountName: "foo"},
		Tokens: entity.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}, nil
}

type stubMembers struct{}

func (stubMembers) Me(ctx context.Context, email string) (*entity.Member, error) {
	return &entity.Member{AccountID: 1, Email: email, AccountName: "foo"}, nil
}

func newTestRouter(burst int) *gin.Engine {
	return NewRouter(Handlers{
		Health: handler.NewHealthHandler(nil),
		Kakao:  memberhandler.NewKakaoHandler(stubLogin{}, nil),
		Member: memberhandler.NewMemberHandler(stubMembers{}),
	}, Options{
		JWTSecret:    "secret",
		CORSOrigins:  []string{"http://localhost:3000"},
		LoginLimiter: middleware.NewIPRateLimiter(0.001, burst),
		Metrics:      metrics.New(),
	})
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	pair, err := jwtmw.NewGenerator("secret", time.Hour, time.Hour).GenerateTokenPair("k_a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		auth       string
		wantStatus int
	}{
		{"health", "/healthz", "", http.StatusOK},
		{"metrics", "/metrics", "", http.StatusOK},
		{"login", "/api/members/kakao/callback?code=c", "", http.StatusOK},
		{"login without code", "/api/members/kakao/callback", "", http.StatusBadRequest},
		{"me without token", "/api/members/me", "", http.StatusUnauthorized},
		{"me with access token", "/api/members/me", "Bearer " + pair.AccessToken, http.StatusOK},
		{"me with refresh token", "/api/members/me", "Bearer " + pair.RefreshToken, http.StatusUnauthorized},
		{"unknown", "/nope", "", http.StatusNotFound},
	}

	r := newTestRouter(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_LoginIsRateLimited(t *testing.T) {
	t.Parallel()

	r := newTestRouter(1)

	do := func(path string) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("/api/members/kakao/callback?code=c"))
	assert.Equal(t, http.StatusTooManyRequests, do("/api/members/kakao/callback?code=c"))
	assert.Equal(t, http.StatusOK, do("/healthz"), "other routes are not limited")
}

func TestNewRouter_CORSExposesTokenHeaders(t *testing.T) {
	t.Parallel()

	r := newTestRouter(10)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/kakao/callback?code=c", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// header names are canonicalised, browsers compare them case-insensitively
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "access_token")
	assert.Contains(t, exposed, "refresh_token")
	assert.Equal(t, "a", w.Header().Get("Access_Token"))
}
