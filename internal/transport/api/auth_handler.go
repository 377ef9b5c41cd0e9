package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/service"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/response"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Email     string `binding:"required,wallet_email" json:"email"`
	FirstName string `binding:"required"              json:"first_name"`
	LastName  string `binding:"required"              json:"last_name"`
	Password  string `binding:"required,min=8"        json:"password"`
}

// Register POST RegisterRoute. Создает юзера с нулевым балансом.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Password:  params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			response.AbortJSON(c, http.StatusConflict, http.StatusConflict, "user already exists", nil)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response.JSON(c, http.StatusCreated, http.StatusCreated, "registration succeeded, please log in", nil)
}

type UserLoginParams struct {
	Email    string `binding:"required,wallet_email" json:"email"`
	Password string `binding:"required"              json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login POST LoginRoute. Аутентификация по паре email/пароль, выдает jwt
// токен на 12 часов.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			response.AbortJSON(c, http.StatusUnauthorized, response.CodeBadCredentials, "email not found", nil)
		case errors.Is(err, domain.ErrPasswordMissMatch):
			response.AbortJSON(c, http.StatusUnauthorized, response.CodeBadCredentials, "invalid credentials", nil)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	response.JSON(c, http.StatusOK, http.StatusOK, "login successful", LoginResponse{Token: token})
}

// abortWithBindError переводит ошибки биндинга в конверт. Невалидный email
// отдается с выделенным прикладным кодом, остальное - обычный 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) && len(valErrs) > 0 {
		first := valErrs[0]
		switch {
		case first.Field() == "Email":
			response.AbortJSON(c, http.StatusBadRequest, response.CodeBadEmailFormat, "email format invalid", nil)
		case first.Field() == "Password":
			response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "password too short", nil)
		default:
			response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "bad request", nil)
		}
		return
	}
	response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "bad request", nil)
}
