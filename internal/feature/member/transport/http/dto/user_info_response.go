package dto

import "hackathon_backend/internal/feature/member/domain/entity"

// UserInfoRes is the member data returned after login and by /me.
type UserInfoRes struct {
	UserID      uint   `json:"userId"`
	AccountName string `json:"accountName"`
}

// NewUserInfoRes maps a member to its public representation.
func NewUserInfoRes(m *entity.Member) UserInfoRes {
	return UserInfoRes{UserID: m.AccountID, AccountName: m.AccountName}
}
