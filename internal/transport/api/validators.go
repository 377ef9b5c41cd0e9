package api

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// emailRegexp простая проверка формы local@domain.tld. Краевые случаи
// RFC 5322 сознательно не покрываются.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateWalletEmail в отличии от тэга email не претендует на RFC - только
// форма local@domain.tld без пробелов.
func validateWalletEmail(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return emailRegexp.MatchString(str)
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("wallet_email", validateWalletEmail); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
