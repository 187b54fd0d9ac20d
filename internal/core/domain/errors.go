package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Registration / identity errors.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// Token validation errors. ValidateToken classifies every failure into exactly
// one of these; callers never see an unclassified parse error.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrBadSignature     = errors.New("token signature invalid")
	ErrIssuerMismatch   = errors.New("token issuer mismatch")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrTokenExpired     = errors.New("token expired")
)

// Quiz content errors.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrResultNotFound   = errors.New("result not found")
	ErrForbidden        = errors.New("access forbidden")
)

// PasswordViolation names a single password-policy rule that a candidate
// password failed to satisfy.
type PasswordViolation string

const (
	ViolationTooShort           PasswordViolation = "too_short"
	ViolationMissingDigit       PasswordViolation = "missing_digit"
	ViolationMissingLowercase   PasswordViolation = "missing_lowercase"
	ViolationMissingUppercase   PasswordViolation = "missing_uppercase"
	ViolationMissingNonAlphanum PasswordViolation = "missing_non_alphanumeric"
)

// WeakPasswordError carries every policy rule the candidate password violated,
// so the caller can render the full list rather than the first failure.
type WeakPasswordError struct {
	Violations []PasswordViolation
}

func (e *WeakPasswordError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = string(v)
	}
	return fmt.Sprintf("password does not meet policy: %s", strings.Join(parts, ", "))
}
