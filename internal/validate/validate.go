// Package validate holds the form field rules. Checks run in order and the
// first failing rule wins, so each function returns the exact user-facing
// message for its rule.
package validate

import (
	"net/mail"
	"strings"
)

const passwordSymbols = "!@#$%^&*"

// Name requires a trimmed length of at least 7 characters.
func Name(name string) (string, bool) {
	if len(strings.TrimSpace(name)) < 7 {
		return "Name must be at least 7 characters long.", false
	}
	return "", true
}

// Email requires a syntactically valid, bare address.
func Email(email string) (string, bool) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		return "Please provide a valid email address.", false
	}
	return "", true
}

// Password requires length >= 8, at least one digit and at least one
// symbol from !@#$%^&*.
func Password(password string) (string, bool) {
	if len(password) < 8 {
		return "Password must be at least 8 characters long.", false
	}
	if !strings.ContainsAny(password, "0123456789") ||
		!strings.ContainsAny(password, passwordSymbols) {
		return "Password must contain at least one number and one symbol (!@#$%^&*).", false
	}
	return "", true
}

// ContactSubject requires a trimmed length of at least 2 characters.
func ContactSubject(subject string) (string, bool) {
	if len(strings.TrimSpace(subject)) < 2 {
		return "Subject must be at least 2 characters long.", false
	}
	return "", true
}

// ContactMessage requires a trimmed length of at least 10 characters.
func ContactMessage(message string) (string, bool) {
	if len(strings.TrimSpace(message)) < 10 {
		return "Message must be at least 10 characters long.", false
	}
	return "", true
}
