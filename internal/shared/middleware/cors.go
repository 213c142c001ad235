package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"booklisting-backend/internal/auth"
)

var corsAllowHeaders = strings.Join([]string{
	"Content-Type",
	auth.HeaderAdminSecret,
	auth.HeaderSellerCode,
}, ", ")

// CORS opens every route to any origin. Preflight requests are answered here
// with an empty 200, whether or not a route matches.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
