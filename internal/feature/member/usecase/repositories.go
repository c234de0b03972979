package usecase

import (
	"context"

	"hackathon_backend/internal/feature/member/domain/entity"
)

// MemberRepository abstracts the persistence layer for members.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MemberRepository interface {
	// Create persists a new member. It returns ErrMemberAlreadyExists when the email is taken.
	Create(ctx context.Context, member *entity.Member) error

	// FindByEmail returns ErrMemberNotFound when no member has the email.
	FindByEmail(ctx context.Context, email string) (*entity.Member, error)
}

// SocialAccessTokenRepository stores provider access tokens of returning members.
type SocialAccessTokenRepository interface {
	Save(ctx context.Context, token *entity.SocialAccessToken) error
}

// RefreshTokenRepository stores at most one refresh token per account email.
type RefreshTokenRepository interface {
	// FindByAccountEmail returns ErrRefreshTokenNotFound when nothing is stored.
	FindByAccountEmail(ctx context.Context, email string) (*entity.RefreshToken, error)

	// Save creates or replaces the token for token.AccountEmail.
	Save(ctx context.Context, token *entity.RefreshToken) error
}

// SocialProvider is the capability a social login provider must offer.
// Swapping implementations is how other providers would be added.
type SocialProvider interface {
	// Name identifies the provider, e.g. "kakao".
	Name() string

	// EmailPrefix is prepended to the provider email to build the local account email.
	EmailPrefix() string

	// ExchangeCode trades an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile reads the user's identity with a provider access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.SocialProfile, error)
}

// TokenGenerator mints the access/refresh JWT pair for an account.
type TokenGenerator interface {
	GenerateTokenPair(email string) (entity.TokenPair, error)
}
