package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvforge/internal/auth"
)

const (
	userIDKey    = "userID"
	userEmailKey = "userEmail"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// AuthMiddleware 校验访问令牌并将用户信息注入上下文。
func AuthMiddleware(authService *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := authService.ValidateToken(rawToken)
		if err != nil || claims.TokenType != "access" {
			abortUnauthorized(c)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware 若带了合法令牌则注入用户信息，否则按匿名请求放行。
// 模板权限查询等接口对匿名用户也开放，只是返回的结果不同。
func OptionalAuthMiddleware(authService *auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := bearerToken(c)
		if ok {
			if claims, err := authService.ValidateToken(rawToken); err == nil && claims.TokenType == "access" {
				c.Set(userIDKey, claims.UserID)
				c.Set(userEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// UserIDFromContext 返回已认证用户的 id；匿名请求返回 nil。
func UserIDFromContext(c *gin.Context) *uint {
	if value, ok := c.Get(userIDKey); ok {
		if id, ok := value.(uint); ok {
			return &id
		}
	}
	return nil
}

// UserEmailFromContext 返回已认证用户的邮箱，匿名时为空串。
func UserEmailFromContext(c *gin.Context) string {
	if value, ok := c.Get(userEmailKey); ok {
		if email, ok := value.(string); ok {
			return email
		}
	}
	return ""
}
