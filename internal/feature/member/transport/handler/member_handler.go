package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/transport/http/dto"
	"hackathon_backend/internal/feature/member/usecase"
	jwtmw "hackathon_backend/internal/platform/jwt"
	"hackathon_backend/internal/shared/apperr"
	"hackathon_backend/internal/shared/response"
)

// MemberUsecase reads the authenticated member.
type MemberUsecase interface {
	Me(ctx context.Context, email string) (*entity.Member, error)
}

// MemberHandler serves member endpoints behind jwtmw.AuthRequired.
type MemberHandler struct {
	members MemberUsecase
}

func NewMemberHandler(members MemberUsecase) *MemberHandler {
	return &MemberHandler{members: members}
}

// Me handles GET /api/members/me.
func (h *MemberHandler) Me(c *gin.Context) {
	email := c.GetString(jwtmw.ContextEmail)
	if email == "" {
		_ = c.Error(apperr.New(apperr.CodeInvalidToken, nil))
		return
	}

	m, err := h.members.Me(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrMemberNotFound) {
			_ = c.Error(apperr.New(apperr.CodeMemberNotFound, err))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewUserInfoRes(m), "ok"))
}
