// Package middleware provides the gin middlewares shared by every route.
package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hackathon_backend/internal/shared/apperr"
	"hackathon_backend/internal/shared/response"
)

// ErrorHandler translates the last error attached with c.Error into the
// failure envelope. Handlers only record errors; they never render them.
//   - validation errors → 400 with the first field-error message
//   - *apperr.Error     → its status and code
//   - anything else     → 500 INTERNAL_SERVER_ERROR
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verrs validator.ValidationErrors
		var appErr *apperr.Error
		switch {
		case errors.As(err, &verrs) && len(verrs) > 0:
			slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.JSON(apperr.CodeInvalidRequest.Status,
				response.FailWithMessage(apperr.CodeInvalidRequest, FirstFieldError(verrs)))
		case errors.As(err, &appErr):
			level := slog.LevelWarn
			if appErr.Code.Status >= 500 {
				level = slog.LevelError
			}
			slog.Log(c.Request.Context(), level, "request failed",
				"code", appErr.Code.Code, "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.JSON(appErr.Code.Status, response.Fail(appErr.Code))
		default:
			slog.Error("unhandled error", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.JSON(apperr.CodeInternal.Status, response.Fail(apperr.CodeInternal))
		}
	}
}

// FirstFieldError renders the first validation failure as a short message.
func FirstFieldError(errs validator.ValidationErrors) string {
	fe := errs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
