// Package entity defines the domain entities for the member feature.
package entity

import "time"

// Member is the local account that corresponds to a social identity.
// It is created on the first social login and never deleted by the login flow.
type Member struct {
	// AccountID is generated by the database.
	AccountID uint `gorm:"column:account_id;primaryKey"`

	// Email carries the provider prefix (for example "k_" for Kakao)
	// and is unique across members.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// AccountName is the display name taken from the provider profile.
	AccountName string `gorm:"size:255"`

	// AccountPw is a bcrypt hash. Social accounts get a hash of a random
	// value so that they cannot be used for password login.
	AccountPw string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Member) TableName() string {
	return "members"
}
