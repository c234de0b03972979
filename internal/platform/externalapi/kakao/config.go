// Package kakao provides a client for the Kakao OAuth2 login API.
package kakao

import "time"

const (
	DefaultTokenURI    = "https://kauth.kakao.com/oauth/token"
	DefaultUserInfoURI = "https://kapi.kakao.com/v2/user/me"
)

// Config holds configuration for the Kakao client.
type Config struct {
	ClientID     string        // REST API key of the Kakao app
	ClientSecret string        // optional; sent only when set
	RedirectURI  string        // must match the redirect URI registered on Kakao
	TokenURI     string        // token endpoint
	UserInfoURI  string        // user-info endpoint
	Timeout      time.Duration // deadline of each outbound call; 0 means none
}

func (c Config) withDefaults() Config {
	if c.TokenURI == "" {
		c.TokenURI = DefaultTokenURI
	}
	if c.UserInfoURI == "" {
		c.UserInfoURI = DefaultUserInfoURI
	}
	return c
}
