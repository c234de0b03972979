package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hackathon_backend/internal/feature/member/domain/entity"
)

// RoleUser is the only authority granted to social members.
const RoleUser = "ROLE_USER"

// Options tunes optional behavior of the login usecase.
type Options struct {
	// PersistRefreshToken stores the issued refresh token per account.
	// Disabled by default.
	PersistRefreshToken bool

	// PasswordCost is the bcrypt cost for the random social account password.
	// Zero means bcrypt.DefaultCost.
	PasswordCost int
}

// LoginResult is everything the transport layer needs after a successful login.
type LoginResult struct {
	Member    *entity.Member
	Tokens    entity.TokenPair
	Principal entity.Principal
	// Created is true when this login created the member.
	Created bool
}

// kakaoLoginUsecase orchestrates social login: code exchange, profile fetch,
// member upsert and token minting.
type kakaoLoginUsecase struct {
	provider      SocialProvider
	members       MemberRepository
	socialTokens  SocialAccessTokenRepository
	refreshTokens RefreshTokenRepository
	tokens        TokenGenerator
	opts          Options
}

// NewKakaoLoginUsecase creates a new instance of kakaoLoginUsecase.
func NewKakaoLoginUsecase(
	provider SocialProvider,
	members MemberRepository,
	socialTokens SocialAccessTokenRepository,
	refreshTokens RefreshTokenRepository,
	tokens TokenGenerator,
	opts Options,
) *kakaoLoginUsecase {
	if opts.PasswordCost == 0 {
		opts.PasswordCost = bcrypt.DefaultCost
	}
	return &kakaoLoginUsecase{
		provider:      provider,
		members:       members,
		socialTokens:  socialTokens,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		opts:          opts,
	}
}

// KakaoLogin runs the login sequence for an authorization code.
// Steps are not compensated: a failure after member creation leaves the member in place.
func (u *kakaoLoginUsecase) KakaoLogin(ctx context.Context, code string) (*LoginResult, error) {
	accessToken, err := u.IssuedAccessToken(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := u.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	member, created, err := u.SaveMember(ctx, profile, accessToken)
	if err != nil {
		return nil, err
	}

	principal := u.ForceLoginUser(member)

	pair, err := u.CreateToken(ctx, member)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Member:    member,
		Tokens:    pair,
		Principal: principal,
		Created:   created,
	}, nil
}

// IssuedAccessToken exchanges the authorization code for a provider access token.
func (u *kakaoLoginUsecase) IssuedAccessToken(ctx context.Context, code string) (string, error) {
	token, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: exchange code: %w", ErrSocialAuthFailed, err)
	}
	if token == "" {
		return "", fmt.Errorf("%w: empty access token", ErrSocialAuthFailed)
	}
	return token, nil
}

// GetUserInfo fetches the social profile with the provider access token.
func (u *kakaoLoginUsecase) GetUserInfo(ctx context.Context, accessToken string) (*entity.SocialProfile, error) {
	profile, err := u.provider.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch profile: %w", ErrSocialAuthFailed, err)
	}
	return profile, nil
}

// SaveMember looks the member up by the provider-prefixed email.
// A missing member is created; an existing one is returned unchanged and the
// provider access token is recorded instead.
func (u *kakaoLoginUsecase) SaveMember(ctx context.Context, profile *entity.SocialProfile, accessToken string) (*entity.Member, bool, error) {
	email := u.provider.EmailPrefix() + profile.Email

	existing, err := u.members.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// fall through to the returning-member path below
	case errors.Is(err, ErrMemberNotFound):
		member, err := u.createMember(ctx, email, profile.Nickname)
		if err == nil {
			return member, true, nil
		}
		if !errors.Is(err, ErrMemberAlreadyExists) {
			return nil, false, err
		}
		// Lost a race with a concurrent login for the same account.
		existing, err = u.members.FindByEmail(ctx, email)
		if err != nil {
			return nil, false, err
		}
	default:
		return nil, false, err
	}

	record := &entity.SocialAccessToken{
		AccessToken: accessToken,
		Email:       email,
		Provider:    u.provider.Name(),
	}
	if err := u.socialTokens.Save(ctx, record); err != nil {
		return nil, false, fmt.Errorf("failed to save social access token: %w", err)
	}
	return existing, false, nil
}

func (u *kakaoLoginUsecase) createMember(ctx context.Context, email, nickname string) (*entity.Member, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), u.opts.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	member := &entity.Member{
		Email:       email,
		AccountName: nickname,
		AccountPw:   string(hashed),
	}
	if err := u.members.Create(ctx, member); err != nil {
		return nil, err
	}
	slog.Info("member created", "member_id", member.AccountID, "provider", u.provider.Name())
	return member, nil
}

// ForceLoginUser builds the authenticated principal for the member.
func (u *kakaoLoginUsecase) ForceLoginUser(member *entity.Member) entity.Principal {
	return entity.Principal{
		MemberID:    member.AccountID,
		Email:       member.Email,
		AccountName: member.AccountName,
		Authorities: []string{RoleUser},
	}
}

// CreateToken mints the JWT pair keyed by the member email and, when enabled,
// stores the refresh token.
func (u *kakaoLoginUsecase) CreateToken(ctx context.Context, member *entity.Member) (entity.TokenPair, error) {
	pair, err := u.tokens.GenerateTokenPair(member.Email)
	if err != nil {
		return entity.TokenPair{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if !u.opts.PersistRefreshToken {
		return pair, nil
	}

	stored, err := u.refreshTokens.FindByAccountEmail(ctx, member.Email)
	switch {
	case err == nil:
		stored = stored.UpdateToken(pair.RefreshToken)
	case errors.Is(err, ErrRefreshTokenNotFound):
		stored = &entity.RefreshToken{Token: pair.RefreshToken, AccountEmail: member.Email}
	default:
		return entity.TokenPair{}, err
	}
	if err := u.refreshTokens.Save(ctx, stored); err != nil {
		return entity.TokenPair{}, fmt.Errorf("failed to save refresh token: %w", err)
	}
	return pair, nil
}

// Me returns the member that owns the authenticated account email.
func (u *kakaoLoginUsecase) Me(ctx context.Context, email string) (*entity.Member, error) {
	return u.members.FindByEmail(ctx, email)
}
