//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package password

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Password length limits in characters.
const (
	MinLength = 8
	MaxLength = 20
)

// SpecialChars lists the characters accepted as special characters.
const SpecialChars = `!@#$%^&*(),.?":{}|<>`

// StrengthError describes why a password was rejected.
type StrengthError struct {
	Reason string
}

func (e *StrengthError) Error() string {
	return "weak password: " + e.Reason
}

// ValidateStrength checks that the password is between MinLength and
// MaxLength characters and contains upper and lower case letters, a
// digit, and one of SpecialChars. It returns a *StrengthError if the
// password is rejected.
func ValidateStrength(password string) error {
	l := utf8.RuneCountInString(password)
	if l < MinLength {
		return &StrengthError{
			Reason: fmt.Sprintf("password must be at least %d characters",
				MinLength),
		}
	}
	if l > MaxLength {
		return &StrengthError{
			Reason: fmt.Sprintf("password must be at most %d characters",
				MaxLength),
		}
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		}
	}
	if !(upper && lower && digit && special) {
		return &StrengthError{
			Reason: "password must contain upper and lower case letters, digits, and special characters",
		}
	}
	return nil
}
