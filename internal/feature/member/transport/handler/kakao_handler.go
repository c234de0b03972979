// Package handler provides the HTTP handlers of the member feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon_backend/internal/feature/member/transport/http/dto"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/shared/apperr"
	"hackathon_backend/internal/shared/response"
)

// Response headers carrying the issued tokens.
const (
	HeaderAccessToken  = "Access_Token"
	HeaderRefreshToken = "Refresh_Token"
)

// Login results reported to the LoginRecorder.
const (
	loginSuccess = "success"
	loginFailure = "failure"
)

// KakaoLoginUsecase defines the social login use case.
// Following Go convention, the interface is defined by the consumer (handler).
type KakaoLoginUsecase interface {
	KakaoLogin(ctx context.Context, code string) (*usecase.LoginResult, error)
}

// LoginRecorder counts login attempts per provider and result.
type LoginRecorder interface {
	RecordLogin(provider, result string)
}

// KakaoHandler handles the Kakao login callback.
type KakaoHandler struct {
	login    KakaoLoginUsecase
	recorder LoginRecorder
}

// NewKakaoHandler creates a KakaoHandler. recorder may be nil.
func NewKakaoHandler(login KakaoLoginUsecase, recorder LoginRecorder) *KakaoHandler {
	return &KakaoHandler{login: login, recorder: recorder}
}

// Login handles GET /api/members/kakao/callback?code=.
// On success the tokens are returned in the Access_Token and Refresh_Token
// headers and the member in the envelope body.
func (h *KakaoHandler) Login(c *gin.Context) {
	var req dto.KakaoLoginReq
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.login.KakaoLogin(c.Request.Context(), req.Code)
	if err != nil {
		h.record(loginFailure)
		slog.Warn("kakao login failed", "error", err, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrSocialAuthFailed) {
			_ = c.Error(apperr.New(apperr.CodeSocialLoginFailed, err))
			return
		}
		_ = c.Error(err)
		return
	}

	h.record(loginSuccess)
	slog.Info("kakao login successful",
		"member_id", res.Principal.MemberID,
		"authorities", res.Principal.Authorities,
		"created", res.Created,
		"remote_addr", c.ClientIP())

	c.Header(HeaderAccessToken, res.Tokens.AccessToken)
	c.Header(HeaderRefreshToken, res.Tokens.RefreshToken)
	c.JSON(http.StatusOK, response.Success(dto.NewUserInfoRes(res.Member), "login succeeded"))
}

func (h *KakaoHandler) record(result string) {
	if h.recorder != nil {
		h.recorder.RecordLogin("kakao", result)
	}
}
