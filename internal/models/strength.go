package models

import "unicode"

// PasswordStrength is the signup screen's strength meter.
type PasswordStrength struct {
	Score int
	Label string
}

// RatePassword scores a password: empty 0, under 6 chars "Weak" (25),
// under 8 "Fair" (50), 8+ with lower, upper and digit "Strong" (100),
// otherwise "Good" (75).
func RatePassword(password string) PasswordStrength {
	n := len([]rune(password))
	switch {
	case n == 0:
		return PasswordStrength{Score: 0, Label: ""}
	case n < 6:
		return PasswordStrength{Score: 25, Label: "Weak"}
	case n < 8:
		return PasswordStrength{Score: 50, Label: "Fair"}
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if lower && upper && digit {
		return PasswordStrength{Score: 100, Label: "Strong"}
	}
	return PasswordStrength{Score: 75, Label: "Good"}
}
