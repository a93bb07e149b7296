package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ptxer/Ticket/pkg/session"
)

// SessionAuth validates the bearer token against the same session the
// poller was armed with.
func SessionAuth(s *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := s.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Next()
	}
}
