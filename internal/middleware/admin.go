package middleware

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAdmin must run after Auth.
func RequireAdmin(access AdminChecker, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := UserID(c)
		if userID == "" {
			unauthorized(c, "authentication required")
			return
		}

		ok, err := access.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "admin check failed",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ginext.H{"error": "storage unavailable, retry later"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}
