package entity

import "slices"

// SocialProfile is the identity returned by a social provider's user-info API.
type SocialProfile struct {
	ID       int64
	Nickname string
	Email    string
}

// Principal is the authenticated identity produced by a successful login.
// It is passed explicitly to callers instead of being stored in request-scoped state.
type Principal struct {
	MemberID    uint
	Email       string
	AccountName string
	Authorities []string
}

// HasAuthority reports whether the principal was granted the given authority.
func (p Principal) HasAuthority(authority string) bool {
	return slices.Contains(p.Authorities, authority)
}
