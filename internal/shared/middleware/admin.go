package middleware

import (
	"github.com/gin-gonic/gin"

	"booklisting-backend/internal/auth"
	"booklisting-backend/internal/shared/response"
)

// AdminChecker reports whether a header value is the admin secret.
type AdminChecker interface {
	IsAdmin(secret string) bool
}

// AdminOnly rejects the request with 401 unless the admin header matches.
func AdminOnly(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.IsAdmin(c.GetHeader(auth.HeaderAdminSecret)) {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyGrant, auth.GrantAdmin)
		c.Next()
	}
}
