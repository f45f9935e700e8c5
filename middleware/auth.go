package middleware

import (
	"strings"

	"Spotlight/pkg/context"
	"Spotlight/pkg/jwt"
	"Spotlight/pkg/log"
	"Spotlight/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth resolves the bearer token into an identity. A request without a usable token
// proceeds anonymously and the service layer decides whether that is allowed.
func Auth(verifier *jwt.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := verifier.ParseToken(token)
		if err != nil {
			log.L.Debug("token rejected", zap.Error(err))
			c.Next()
			return
		}

		context.SetIdentity(c, &types.Identity{Subject: claims.Subject, Email: claims.Email})
		c.Next()
	}
}

// bearerToken Authorization 头，websocket 握手时允许 ?token= 传递
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return c.Query("token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
