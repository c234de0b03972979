package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/platform/http/middleware"
	jwtmw "hackathon_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockKakaoLoginUsecase is a mock implementation of KakaoLoginUsecase.
type mockKakaoLoginUsecase struct {
	KakaoLoginFunc func(ctx context.Context, code string) (*usecase.LoginResult, error)
	gotCode        string
}

func (m *mockKakaoLoginUsecase) KakaoLogin(ctx context.Context, code string) (*usecase.LoginResult, error) {
	m.gotCode = code
	if m.KakaoLoginFunc != nil {
		return m.KakaoLoginFunc(ctx, code)
	}
	return nil, errors.New("login failed")
}

type mockMemberUsecase struct {
	MeFunc func(ctx context.Context, email string) (*entity.Member, error)
}

func (m *mockMemberUsecase) Me(ctx context.Context, email string) (*entity.Member, error) {
	return m.MeFunc(ctx, email)
}

type recorderSpy struct {
	calls []string
}

func (r *recorderSpy) RecordLogin(provider, result string) {
	r.calls = append(r.calls, provider+":"+result)
}

type envelope struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Data      struct {
		UserID      uint   `json:"userId"`
		AccountName string `json:"accountName"`
	} `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func successResult() *usecase.LoginResult {
	member := &entity.Member{AccountID: 42, Email: "k_a@b.com", AccountName: "foo"}
	return &usecase.LoginResult{
		Member: member,
		Tokens: entity.TokenPair{AccessToken: "access.jwt", RefreshToken: "refresh.jwt"},
		Principal: entity.Principal{
			MemberID: 42, Email: "k_a@b.com", AccountName: "foo", Authorities: []string{usecase.RoleUser},
		},
		Created: true,
	}
}

func newLoginRouter(h *KakaoHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/members/kakao/callback", h.Login)
	return r
}

func TestKakaoHandler_Login_Success(t *testing.T) {
	t.Parallel()

	uc := &mockKakaoLoginUsecase{
		KakaoLoginFunc: func(ctx context.Context, code string) (*usecase.LoginResult, error) {
			return successResult(), nil
		},
	}
	spy := &recorderSpy{}
	r := newLoginRouter(NewKakaoHandler(uc, spy))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/kakao/callback?code=the-code", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "the-code", uc.gotCode)
	assert.Equal(t, "access.jwt", w.Header().Get(HeaderAccessToken))
	assert.Equal(t, "refresh.jwt", w.Header().Get(HeaderRefreshToken))

	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, uint(42), body.Data.UserID)
	assert.Equal(t, "foo", body.Data.AccountName)
	assert.Equal(t, []string{"kakao:success"}, spy.calls)

	// tokens travel only in headers
	assert.NotContains(t, w.Body.String(), "access.jwt")
}

func TestKakaoHandler_Login_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		url           string
		loginErr      error
		wantStatus    int
		wantErrorCode string
		wantRecorded  []string
	}{
		{
			name:          "missing code",
			url:           "/api/members/kakao/callback",
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: "INVALID_REQUEST",
		},
		{
			name:          "provider failure",
			url:           "/api/members/kakao/callback?code=bad",
			loginErr:      fmt.Errorf("%w: exchange code: invalid_grant", usecase.ErrSocialAuthFailed),
			wantStatus:    http.StatusBadGateway,
			wantErrorCode: "SOCIAL_LOGIN_FAILED",
			wantRecorded:  []string{"kakao:failure"},
		},
		{
			name:          "persistence failure",
			url:           "/api/members/kakao/callback?code=ok",
			loginErr:      errors.New("db down"),
			wantStatus:    http.StatusInternalServerError,
			wantErrorCode: "INTERNAL_SERVER_ERROR",
			wantRecorded:  []string{"kakao:failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockKakaoLoginUsecase{
				KakaoLoginFunc: func(ctx context.Context, code string) (*usecase.LoginResult, error) {
					return nil, tt.loginErr
				},
			}
			spy := &recorderSpy{}
			r := newLoginRouter(NewKakaoHandler(uc, spy))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantErrorCode, body.ErrorCode)
			assert.Empty(t, w.Header().Get(HeaderAccessToken))
			assert.Empty(t, w.Header().Get(HeaderRefreshToken))
			assert.Equal(t, tt.wantRecorded, spy.calls)
		})
	}
}

func TestKakaoHandler_Login_NilRecorder(t *testing.T) {
	t.Parallel()

	uc := &mockKakaoLoginUsecase{
		KakaoLoginFunc: func(ctx context.Context, code string) (*usecase.LoginResult, error) {
			return successResult(), nil
		},
	}
	r := newLoginRouter(NewKakaoHandler(uc, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/kakao/callback?code=c", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func newMeRouter(h *MemberHandler, email string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/members/me", func(c *gin.Context) {
		if email != "" {
			c.Set(jwtmw.ContextEmail, email)
		}
		c.Next()
	}, h.Me)
	return r
}

func TestMemberHandler_Me(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		email         string
		meFunc        func(ctx context.Context, email string) (*entity.Member, error)
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:  "found",
			email: "k_a@b.com",
			meFunc: func(ctx context.Context, email string) (*entity.Member, error) {
				return &entity.Member{AccountID: 3, Email: email, AccountName: "foo"}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "member deleted since token was issued",
			email: "k_a@b.com",
			meFunc: func(ctx context.Context, email string) (*entity.Member, error) {
				return nil, usecase.ErrMemberNotFound
			},
			wantStatus:    http.StatusNotFound,
			wantErrorCode: "MEMBER_NOT_FOUND",
		},
		{
			name:          "no authenticated email",
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newMeRouter(NewMemberHandler(&mockMemberUsecase{MeFunc: tt.meFunc}), tt.email)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/members/me", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantErrorCode, body.ErrorCode)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, body.Success)
				assert.Equal(t, uint(3), body.Data.UserID)
				assert.Equal(t, "foo", body.Data.AccountName)
			}
		})
	}
}
