package jwtmw

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hackathon_backend/internal/shared/apperr"
)

// ContextEmail is the gin context key holding the authenticated account email.
const ContextEmail = "accountEmail"

// errWrongTokenType rejects refresh tokens presented as access tokens.
var errWrongTokenType = errors.New("token is not an access token")

// ParseAccessToken verifies an access token and returns its subject.
func ParseAccessToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if typ, _ := claims["type"].(string); typ != TokenTypeAccess {
		return "", errWrongTokenType
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}

// AuthRequired returns a Gin middleware that accepts only requests with a
// valid access token in the Authorization header.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			_ = c.Error(apperr.New(apperr.CodeMissingToken, nil))
			c.Abort()
			return
		}

		if secret == "" {
			_ = c.Error(apperr.New(apperr.CodeServerMisconfigured, nil))
			c.Abort()
			return
		}

		email, err := ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			_ = c.Error(apperr.New(apperr.CodeInvalidToken, err))
			c.Abort()
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}
