package api

import (
	"github.com/gin-gonic/gin"

	"github.com/nutech-integrasi/wallet-api/internal/transport/api/middlewares"
)

// getUserEmailFromContext берет из контекста gin email текущего юзера. Email
// устанавливается в middlewares.AuthRequired. В случае, если значения в
// контексте нет или ошибка утверждения типа - вернется пустая строка.
func getUserEmailFromContext(c *gin.Context) string {
	emailVal, exist := c.Get(middlewares.CurrentUserEmailKey)
	if !exist {
		return ""
	}
	email, ok := emailVal.(string)
	if !ok {
		return ""
	}
	return email
}
