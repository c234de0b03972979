// Package usecase implements the business logic for the member feature.
package usecase

import "errors"

var (
	// ErrMemberNotFound is returned when a member cannot be found by email or ID.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberAlreadyExists is returned when creating a member whose email is already taken.
	ErrMemberAlreadyExists = errors.New("member already exists")

	// ErrRefreshTokenNotFound is returned when no refresh token is stored for an account.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// ErrSocialAuthFailed wraps any failure while talking to the social provider
	// (code exchange or profile fetch).
	ErrSocialAuthFailed = errors.New("social authentication failed")
)
