package pantry

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type PasswordResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidatePassword enforces the auth form rules: required, minimum six
// characters. No upper bound and no complexity requirement, on purpose.
// Messages are the Spanish strings the client renders inline.
func ValidatePassword(password string) PasswordResult {
	if password == "" {
		return PasswordResult{Valid: false, Message: "La contraseña es obligatoria"}
	}
	if utf8.RuneCountInString(password) < 6 {
		return PasswordResult{Valid: false, Message: "La contraseña debe tener al menos 6 caracteres"}
	}
	return PasswordResult{Valid: true}
}
