package service

import (
	"hackaplan/app_error"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", app_error.InvalidArgument("email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return "", app_error.InvalidArgument("invalid email address: %s", email)
	}
	return email, nil
}

func requireText(field string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", app_error.InvalidArgument("%s is required", field)
	}
	return value, nil
}

func validateURL(field string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if err := validate.Var(value, "url"); err != nil {
		return "", app_error.InvalidArgument("%s must be a valid URL", field)
	}
	return value, nil
}
