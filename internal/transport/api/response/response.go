// Package response рендерит единый конверт ответа
// {status:{code,message},data}. HTTP статус всегда стандартный;
// status.code несет прикладной код (совпадает с HTTP статусом, кроме
// выделенных кодов ниже).
package response

import "github.com/gin-gonic/gin"

const (
	// CodeBadEmailFormat прикладной код "email не соответствует формату".
	CodeBadEmailFormat = 102
	// CodeBadCredentials прикладной код "неверная пара email/пароль".
	CodeBadCredentials = 103
)

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Status Status `json:"status"`
	Data   any    `json:"data"`
}

func JSON(c *gin.Context, httpStatus int, code int, message string, data any) {
	c.JSON(httpStatus, Body{
		Status: Status{Code: code, Message: message},
		Data:   data,
	})
}

// AbortJSON как JSON, но прерывает цепочку хендлеров.
func AbortJSON(c *gin.Context, httpStatus int, code int, message string, data any) {
	JSON(c, httpStatus, code, message, data)
	c.Abort()
}
