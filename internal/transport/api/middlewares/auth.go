package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nutech-integrasi/wallet-api/internal/service/tokens"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/response"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentUserEmailKey = "currentUserEmail"

// checkAuthorization извлекает токен из заголовка Authorization и проверяет
// его. Если токен не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*jwt.Token, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	tokenStr := tokenHeader[len(bearer):]
	token, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return token, nil
}

// AuthRequired проверяет, что запрос авторизован. Отсутствие токена - 401,
// невалидный или истекший токен - 403. Email юзера пишется в контекст
// (поле CurrentUserEmailKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			if errors.Is(err, ErrTokenNotExist) {
				response.AbortJSON(c, http.StatusUnauthorized, http.StatusUnauthorized, "unauthorized", nil)
				return
			}
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			response.AbortJSON(c, http.StatusForbidden, http.StatusForbidden, "forbidden", nil)
			return
		}
		userClaims, ok := token.Claims.(*tokens.UserClaims)
		if !ok {
			_ = c.Error(errors.New("invalid jwt claims type")).SetType(gin.ErrorTypePrivate)
			response.AbortJSON(c, http.StatusForbidden, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Set(CurrentUserEmailKey, userClaims.Email)
		c.Next()
	}
}
