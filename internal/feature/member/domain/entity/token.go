package entity

// RefreshToken is the refresh token issued to an account.
// At most one is kept per account email.
type RefreshToken struct {
	Token        string
	AccountEmail string
}

// UpdateToken replaces the stored token value and returns the receiver.
func (r *RefreshToken) UpdateToken(token string) *RefreshToken {
	r.Token = token
	return r
}

// TokenPair is the transient result of JWT minting. It is only ever written
// to response headers.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
