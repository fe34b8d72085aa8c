package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const UserIDKey = "user_id"

var errNoBearer = errors.New("missing bearer token")

// UserID returns the authenticated user set by Auth, or "".
func UserID(c *ginext.Context) string {
	return c.GetString(UserIDKey)
}

// Auth verifies an HS256 bearer token and stores its subject, which must be
// a UUID, as the user id.
func Auth(secret, issuer string, log logger.Logger) ginext.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(secret)

	return func(c *ginext.Context) {
		raw, err := bearer(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		var claims jwt.RegisteredClaims
		_, err = parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return key, nil })
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "token rejected",
				logger.String("error", err.Error()),
			)
			unauthorized(c, "invalid token")
			return
		}
		if _, err = uuid.Parse(claims.Subject); err != nil {
			unauthorized(c, "token subject is not a user id")
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}

func bearer(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errNoBearer
	}
	return strings.TrimSpace(token), nil
}

func unauthorized(c *ginext.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": msg})
}
