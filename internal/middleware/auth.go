package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/module/auth"
)

const authUserContextKey = "auth_user"

// Auth returns a gin middleware that gates requests on a valid bearer token.
// The Authorization header carries the raw token (no "Bearer " prefix). On
// success the decoded identity is attached to the context for downstream
// handlers; on any failure the request is aborted with 401 and the next
// handler never runs.
func Auth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not found"})
			return
		}

		user, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(authUserContextKey, user)
		c.Next()
	}
}

// GetAuthUser extracts the authenticated identity set by Auth.
func GetAuthUser(c *gin.Context) (domain.AuthUser, bool) {
	v, exists := c.Get(authUserContextKey)
	if !exists {
		return domain.AuthUser{}, false
	}
	user, ok := v.(domain.AuthUser)
	return user, ok
}
