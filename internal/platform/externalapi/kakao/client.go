package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"

	"hackathon_backend/internal/feature/member/domain/entity"
	"hackathon_backend/internal/feature/member/usecase"
	"hackathon_backend/internal/platform/externalapi/kakao/dto"
	"hackathon_backend/internal/shared/ratelimiter"
)

const (
	providerName = "kakao"
	emailPrefix  = "k_"
)

var (
	// ErrMissingAccessToken is returned when the token endpoint answers without a token.
	ErrMissingAccessToken = errors.New("kakao: token response has no access_token")
	// ErrIncompleteProfile is returned when id, nickname or email is absent.
	ErrIncompleteProfile = errors.New("kakao: user info is incomplete")
)

// Client is the SocialProvider implementation for Kakao.
type Client struct {
	cfg     Config
	oauth   *oauth2.Config
	client  *http.Client
	limiter ratelimiter.Waiter
}

var _ usecase.SocialProvider = (*Client)(nil)

// NewClient creates a Kakao client. Empty endpoint URIs fall back to the
// public Kakao endpoints.
func NewClient(cfg Config, client *http.Client) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURI,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		client: client,
	}
}

// WithLimiter throttles every outbound call through l.
func (k *Client) WithLimiter(l ratelimiter.Waiter) *Client {
	k.limiter = l
	return k
}

func (k *Client) wait(ctx context.Context) error {
	if k.limiter == nil {
		return nil
	}
	return k.limiter.Wait(ctx)
}

// withTimeout bounds one outbound call by cfg.Timeout when it is set.
func (k *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if k.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, k.cfg.Timeout)
}

func (k *Client) Name() string        { return providerName }
func (k *Client) EmailPrefix() string { return emailPrefix }

// ExchangeCode trades an authorization code for a Kakao access token.
func (k *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if err := k.wait(ctx); err != nil {
		return "", err
	}
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, k.client)

	tok, err := k.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("kakao token exchange: %w", err)
	}
	if tok.AccessToken == "" {
		return "", ErrMissingAccessToken
	}
	return tok.AccessToken, nil
}

// FetchProfile reads id, nickname and email of the token owner.
func (k *Client) FetchProfile(ctx context.Context, accessToken string) (*entity.SocialProfile, error) {
	if err := k.wait(ctx); err != nil {
		return nil, err
	}
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.cfg.UserInfoURI, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-type", "application/x-www-form-urlencoded;charset=utf-8")

	res, err := k.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("kakao user info http %d", res.StatusCode)
	}

	var body dto.UserInfoResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("kakao user info decode: %w", err)
	}

	nickname, okNick := body.Nickname()
	email, okEmail := body.Email()
	if body.ID == nil || !okNick || !okEmail {
		return nil, ErrIncompleteProfile
	}

	return &entity.SocialProfile{ID: *body.ID, Nickname: nickname, Email: email}, nil
}
