package httpapi

import (
	"net/http"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// bearerAuth enforces bearer JWT tokens signed with HS256 and stores the
// parsed claims in the request context.
func bearerAuth(signingKey []byte, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader(common.AuthorizationHeaderName)
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimSpace(authz[len("bearer "):])
		claims, err := auth.ParseToken(tokenStr, issuer, signingKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// requireRole gates a route group to one role. The switch over claims.Role
// stays exhaustive: a new role must be mapped here explicitly.
func requireRole(role common.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mustClaims(c)
		if claims == nil {
			return
		}
		switch claims.Role {
		case common.RoleAdmin, common.RoleTeacher, common.RoleStudent, common.RoleDeveloper:
			if claims.Role != role {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "role": claims.Role})
				return
			}
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// mustClaims fetches claims placed by bearerAuth; aborts with 401 when the
// middleware chain was misconfigured.
func mustClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return claims
}

// corsMiddleware handles browser preflight and reflects the origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// securityHeaders sets the usual hardening headers; HSTS only in release
// mode.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
