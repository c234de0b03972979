package adapters

import (
	"time"

	"hackathon_backend/internal/feature/member/domain/entity"
)

// RefreshTokenModel is the GORM model for the refresh_tokens table.
type RefreshTokenModel struct {
	ID           uint   `gorm:"primaryKey"`
	Token        string `gorm:"size:1024;not null"`
	AccountEmail string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *RefreshTokenModel) ToEntity() *entity.RefreshToken {
	return &entity.RefreshToken{
		Token:        m.Token,
		AccountEmail: m.AccountEmail,
	}
}

// RefreshTokenModelFromEntity converts a domain entity to a GORM model.
func RefreshTokenModelFromEntity(t *entity.RefreshToken) *RefreshTokenModel {
	return &RefreshTokenModel{
		Token:        t.Token,
		AccountEmail: t.AccountEmail,
	}
}

// Models lists every GORM model of the member feature, for migrations.
func Models() []any {
	return []any{
		&entity.Member{},
		&entity.SocialAccessToken{},
		&RefreshTokenModel{},
	}
}
