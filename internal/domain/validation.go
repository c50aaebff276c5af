package domain

import (
	"net/mail"
	"strings"
)

// ValidationErrors накапливает все ошибки валидации одной операции,
// чтобы вернуть клиенту полный список за один запрос.
type ValidationErrors []string

// Error implements the error interface
func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v, "; ")
}

// IsValidEmail reports whether addr is a syntactically valid email address
func IsValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// ParseAddress accepts "Name <a@b>" forms; only a bare address is valid input here.
	return parsed.Address == addr
}
