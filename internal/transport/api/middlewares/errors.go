package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutech-integrasi/wallet-api/internal/transport/api/response"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal server error"
	}
}

// Errors дорисовывает конверт для ответов, прерванных через AbortWithError:
// хендлеры кладут в контекст приватную ошибку, а тело формируется здесь.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Size > 0 значит тело уже отрендерено хендлером, ошибка приложена
		// только для логов.
		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		status := c.Writer.Status()
		response.JSON(c, status, status, statusErrorText(status), nil)
		c.Abort()
	}
}
