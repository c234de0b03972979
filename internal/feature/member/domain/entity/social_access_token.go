package entity

import "time"

// SocialAccessToken records a provider access token seen on a returning login.
type SocialAccessToken struct {
	ID          uint   `gorm:"primaryKey"`
	AccessToken string `gorm:"size:1024;not null"`
	Email       string `gorm:"index;size:255;not null"`
	Provider    string `gorm:"size:32;not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM.
func (SocialAccessToken) TableName() string {
	return "social_access_tokens"
}
