package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
)

// Authenticate attaches the caller's identity when a valid bearer token is
// present. It never rejects: a missing, malformed or expired token simply
// leaves the request anonymous, and downstream handlers decide what anonymous
// callers may see.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, err := tokens.Verify(tokenString); err == nil {
				// Set on both the gin context and the request context so
				// usecases reading c.Request.Context() see the id too.
				c.Set(string(domain.KeyUserID), userID)
				ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// RequireAuth gates mutating routes. It runs after Authenticate and aborts
// with 401 when no identity was attached.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := domain.CallerID(c.Request.Context()); !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
