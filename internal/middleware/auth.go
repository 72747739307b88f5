package middleware

import (
	"net/http"
	"strings"

	"Connect_Life/internal/pkg"
	"Connect_Life/internal/policy"

	"github.com/gin-gonic/gin"
)

const ContextIdentityKey = "identity"

// AuthMiddleware 校验 bearer token 并做粗粒度角色检查。
// roles 非空时 token 角色必须命中其一；资源级归属判定交给 policy。
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			return
		}

		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			return
		}

		if len(roles) > 0 && !containsRole(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "access denied for this resource"})
			return
		}

		// 注入调用方身份，handler 只信这里的数据
		c.Set(ContextIdentityKey, policy.Identity{ID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// CurrentIdentity 取出中间件注入的身份
func CurrentIdentity(c *gin.Context) (policy.Identity, bool) {
	v, ok := c.Get(ContextIdentityKey)
	if !ok {
		return policy.Identity{}, false
	}
	id, ok := v.(policy.Identity)
	return id, ok
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
