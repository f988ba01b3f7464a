package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cargo-express-app/internal/app/service"
)

// AuthMiddleware - проверка админской сессии на привилегированных
// маршрутах. Каждый запрос к админскому API проверяет токен заново.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth - middleware для обязательной авторизации
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := am.extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization token required",
			})
			c.Abort()
			return
		}

		if !am.auth.Verify(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractToken - токен из заголовка Authorization ("Bearer <token>")
func (am *AuthMiddleware) extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
