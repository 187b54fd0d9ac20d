package service

import (
	"unicode"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// PasswordPolicy is the configurable complexity policy applied to candidate
// passwords before an identity is created. Each character-class requirement
// toggles independently.
type PasswordPolicy struct {
	MinLength              int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

// DefaultPasswordPolicy mirrors the production defaults: at least 8
// characters with one digit, one lowercase, one uppercase, and one
// non-alphanumeric character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:              8,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
	}
}

// Check evaluates every enabled rule and returns the full list of violations,
// not just the first, so callers can render actionable feedback. A nil result
// means the password satisfies the policy. Pure function, no side effects.
func (p PasswordPolicy) Check(password string) []domain.PasswordViolation {
	var violations []domain.PasswordViolation

	runes := []rune(password)
	if len(runes) < p.MinLength {
		violations = append(violations, domain.ViolationTooShort)
	}

	var hasDigit, hasLower, hasUpper, hasNonAlphanum bool
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasNonAlphanum = true
		}
	}

	if p.RequireDigit && !hasDigit {
		violations = append(violations, domain.ViolationMissingDigit)
	}
	if p.RequireLowercase && !hasLower {
		violations = append(violations, domain.ViolationMissingLowercase)
	}
	if p.RequireUppercase && !hasUpper {
		violations = append(violations, domain.ViolationMissingUppercase)
	}
	if p.RequireNonAlphanumeric && !hasNonAlphanum {
		violations = append(violations, domain.ViolationMissingNonAlphanum)
	}

	return violations
}
