package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salonsage/pkg/utils"
)

// RequireFeature gates a route group on a licensed feature. The caller
// presents the token returned by the license validation endpoint.
func RequireFeature(secret, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "License token missing")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateLicenseToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired license token")
			c.Abort()
			return
		}

		if !claims.HasFeature(feature) {
			utils.RespondError(c, http.StatusForbidden, "License does not include this feature")
			c.Abort()
			return
		}

		c.Set("license_key", claims.Key)
		c.Next()
	}
}
