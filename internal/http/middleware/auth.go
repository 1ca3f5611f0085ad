package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

const authClaimsKey = "auth_claims"

// RequireStaff verifies the bearer access token and rejects non-staff users.
// The token refresh endpoint is mounted outside this middleware so an expired
// access token can still be exchanged.
func RequireStaff(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := tokens.ParseAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if !claims.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
			return
		}
		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims returns the verified claims set by RequireStaff.
func GetAuthClaims(c *gin.Context) (services.AccessClaims, bool) {
	v, ok := c.Get(authClaimsKey)
	if !ok {
		return services.AccessClaims{}, false
	}
	claims, ok := v.(services.AccessClaims)
	return claims, ok
}
