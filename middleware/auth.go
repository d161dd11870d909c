package middleware

import (
	"net/http"
	"strings"

	"homestay/policy"
	"homestay/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the authenticated principal.
const PrincipalKey = "principal"

// JWTAuth validates the Bearer token, checks it against the auth cache (so
// revoked sessions die before the JWT expires) and stores the principal in
// the request context. With optional=true an unauthenticated request passes
// through without a principal; the policy layer then decides what it may do.
func JWTAuth(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		cacheKey := utils.AuthCachePrefix + userID
		storedHash, err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Result()
		if err != nil || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "session expired or revoked"})
			return
		}

		c.Set(PrincipalKey, &policy.Principal{ID: userID, Role: role})
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil for anonymous
// requests that came through an optional-auth route.
func GetPrincipal(c *gin.Context) *policy.Principal {
	val, ok := c.Get(PrincipalKey)
	if !ok {
		return nil
	}
	p, ok := val.(*policy.Principal)
	if !ok {
		return nil
	}
	return p
}
