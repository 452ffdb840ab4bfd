package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neatify/neatify-api/internal/service"
	appErrors "github.com/neatify/neatify-api/pkg/errors"
	"github.com/neatify/neatify-api/pkg/response"
)

// ContextIdentityKey is the gin context key storing the verified identity.
const ContextIdentityKey = "currentIdentity"

// Auth protects routes by requiring a valid Clerk bearer token.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "No token, authorization denied"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid token"))
			c.Abort()
			return
		}

		identity, err := authService.Verify(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}
