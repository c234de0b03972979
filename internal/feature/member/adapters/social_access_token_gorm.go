package adapters

import (
	"context"

	"gorm.io/gorm"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

type socialAccessTokenGorm struct {
	db *gorm.DB
}

var _ usecase.SocialAccessTokenRepository = (*socialAccessTokenGorm)(nil)

// NewSocialAccessTokenGorm creates a new instance of socialAccessTokenGorm.
func NewSocialAccessTokenGorm(db *gorm.DB) *socialAccessTokenGorm {
	return &socialAccessTokenGorm{db: db}
}

// Save appends a row; previous tokens for the same email are kept.
func (r *socialAccessTokenGorm) Save(ctx context.Context, t *entity.SocialAccessToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}
