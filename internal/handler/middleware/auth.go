package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"controlpay/internal/pkg/config"
	"controlpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware resolves exactly one Principal per request, either from a
// bearer token or from the shared API key. Everything below trusts the
// resolved Principal without re-validation.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	apiKey         string
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		apiKey:         cfg.Server.APIKey,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Api-Key"); key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid API key",
				})
				c.Abort()
				return
			}
			c.Set(ctxPrincipalKey, usecase.Principal{
				Kind: usecase.PrincipalApiKey,
				ID:   uuid.Nil,
				Role: usecase.RoleService,
			})
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, principal)
		c.Next()
	}
}

// RequireApiKey admits machine callers only; used for webhook endpoints.
func (m *AuthMiddleware) RequireApiKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Api-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Valid API key required",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, usecase.Principal{
			Kind: usecase.PrincipalApiKey,
			ID:   uuid.Nil,
			Role: usecase.RoleService,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	value, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return usecase.Principal{}, false
	}

	principal, ok := value.(usecase.Principal)
	return principal, ok
}
