package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/logitrack/pkg/ctxmeta"
)

// RoleMiddleware — переносит роль вызывающего из заголовка X-User-Role в
// контекст. Заголовок проставляет внешний слой аутентификации (identity —
// внешний коллаборатор), здесь ему доверяем.
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Request = c.Request.WithContext(
				ctxmeta.WithUserRole(c.Request.Context(), role),
			)
		}
		c.Next()
	}
}

// RequireRole — пропускает запрос дальше только при совпадении роли из
// контекста; иначе 403 без вызова обработчика.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := ctxmeta.UserRoleFromContext(c.Request.Context())
		if !ok || got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
