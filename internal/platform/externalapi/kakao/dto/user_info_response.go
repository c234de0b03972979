// Package dto defines data transfer objects for the Kakao API responses.
package dto

// UserInfoResponse is the subset of the Kakao user-info body the login needs.
// Pointer fields distinguish an absent value from a zero value.
type UserInfoResponse struct {
	ID         *int64 `json:"id"`
	Properties *struct {
		Nickname *string `json:"nickname"`
	} `json:"properties"`
	KakaoAccount *struct {
		Email *string `json:"email"`
	} `json:"kakao_account"`
}

// Nickname returns the nickname and whether it was present.
func (r UserInfoResponse) Nickname() (string, bool) {
	if r.Properties == nil || r.Properties.Nickname == nil {
		return "", false
	}
	return *r.Properties.Nickname, true
}

// Email returns the account email and whether it was present.
func (r UserInfoResponse) Email() (string, bool) {
	if r.KakaoAccount == nil || r.KakaoAccount.Email == nil {
		return "", false
	}
	return *r.KakaoAccount.Email, true
}
