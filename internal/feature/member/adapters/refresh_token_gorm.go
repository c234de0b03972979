package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
)

// refreshTokenGorm is a GORM implementation of the RefreshTokenRepository interface.
type refreshTokenGorm struct {
	db *gorm.DB
}

var _ usecase.RefreshTokenRepository = (*refreshTokenGorm)(nil)

// NewRefreshTokenGorm creates a new instance of refreshTokenGorm.
func NewRefreshTokenGorm(db *gorm.DB) *refreshTokenGorm {
	return &refreshTokenGorm{db: db}
}

// FindByAccountEmail retrieves the refresh token stored for the account.
func (r *refreshTokenGorm) FindByAccountEmail(ctx context.Context, email string) (*entity.RefreshToken, error) {
	var model RefreshTokenModel
	if err := r.db.WithContext(ctx).Where("account_email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Save upserts on account_email so that one row per account is kept.
func (r *refreshTokenGorm) Save(ctx context.Context, t *entity.RefreshToken) error {
	model := RefreshTokenModelFromEntity(t)
	model.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(model).Error
}
