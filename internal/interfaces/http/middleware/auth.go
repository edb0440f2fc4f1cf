package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/domain/access"
	"pulseboard/internal/shared/constants"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// TokenVerifier turns an identity token into a caller.
type TokenVerifier interface {
	Verify(token string) (*access.Caller, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		caller, err := m.verifier.Verify(token)
		if err != nil {
			if authErr := errors.GetAuthError(err); authErr == nil || authErr.ShouldLog {
				m.logger.Warnw("failed to verify token", "error", err)
			}
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		utils.SetCaller(c, caller)
		c.Next()
	}
}

// OptionalAuth sets the caller when a valid token is present and otherwise
// lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if caller, err := m.verifier.Verify(token); err == nil {
				utils.SetCaller(c, caller)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
