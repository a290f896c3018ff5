package dto

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MinPasswordLen: минимальная длина пароля в символах (рунах), общая для клиента и сервера.
const MinPasswordLen = 6

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not valid")
	ErrFullNameRequired = errors.New("full name is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrTokenRequired    = errors.New("token is required")
)

// ValidateEmail проверяет, что адрес непустой и разбирается как e-mail без display name.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	a, err := mail.ParseAddress(email)
	if err != nil || a.Address != email || a.Name != "" {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateNewPassword проверяет пароль, который будет установлен.
func ValidateNewPassword(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrPasswordRequired
	}
	if utf8.RuneCountInString(p) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}
