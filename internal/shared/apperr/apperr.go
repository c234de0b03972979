// Package apperr defines application error codes and the custom error type
// translated into failure responses by the HTTP error middleware.
package apperr

import (
	"fmt"
	"net/http"
)

// ErrorCode pairs a stable client-facing code with its HTTP status and message.
type ErrorCode struct {
	Code    string
	Status  int
	Message string
}

var (
	CodeInvalidRequest      = ErrorCode{"INVALID_REQUEST", http.StatusBadRequest, "invalid request"}
	CodeMissingToken        = ErrorCode{"MISSING_TOKEN", http.StatusUnauthorized, "missing bearer token"}
	CodeInvalidToken        = ErrorCode{"INVALID_TOKEN", http.StatusUnauthorized, "invalid token"}
	CodeMemberNotFound      = ErrorCode{"MEMBER_NOT_FOUND", http.StatusNotFound, "member not found"}
	CodeTooManyRequests     = ErrorCode{"TOO_MANY_REQUESTS", http.StatusTooManyRequests, "too many requests"}
	CodeSocialLoginFailed   = ErrorCode{"SOCIAL_LOGIN_FAILED", http.StatusBadGateway, "social login failed"}
	CodeServerMisconfigured = ErrorCode{"SERVER_MISCONFIGURED", http.StatusInternalServerError, "server misconfigured"}
	CodeInternal            = ErrorCode{"INTERNAL_SERVER_ERROR", http.StatusInternalServerError, "internal server error"}
)

// Error is a custom application error carrying an ErrorCode.
// Err is the underlying cause and is never shown to clients.
type Error struct {
	Code ErrorCode
	Err  error
}

// New wraps err with an error code. err may be nil.
func New(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code.Code, e.Err)
	}
	return e.Code.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}
