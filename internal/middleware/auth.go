package middleware

import (
	"net/http"
	"strings"

	"github.com/AztroNs/sistema-pendientes/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>"
// header. Tokens are validated against the session store on every request.
func RequireAuth(authService services.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		if err := authService.Validate(token); err != nil {
			log.Warn("invalid session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set("session_token", token)
		c.Next()
	}
}
