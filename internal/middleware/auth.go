package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/benzak-dev/benzak-api/internal/domain/dto"
)

// TokenAuth guards a route group with static token authentication. The
// client sends "Authorization: Token <value>" and the value must match one
// of the configured tokens. Empty configured tokens are ignored, and a group
// whose token set is entirely unconfigured rejects every request, stated
// explicitly rather than falling through open.
func TokenAuth(tokens ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t != "" {
			allowed[t] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("authentication is not configured", nil))
			return
		}

		value, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Token ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("missing or malformed authorization header", nil))
			return
		}
		if _, ok := allowed[strings.TrimSpace(value)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("invalid token", nil))
			return
		}

		c.Next()
	}
}
