package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/api/metrics"
	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

// Context keys under which Auth stores the verified claims.
const (
	ContextKeyClaims   = "claims"
	ContextKeySubject  = "subject"
	ContextKeyUsername = "username"
	ContextKeyRoles    = "roles"
)

// Auth validates the bearer token and injects the verified claims into the
// echo context. Every rejection is a 401 with a message matching the failed
// check; the raw token is never logged.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.ValidateToken(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, validationMessage(err))
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeySubject, claims.Subject)
			c.Set(ContextKeyUsername, claims.Username)
			c.Set(ContextKeyRoles, claims.Roles)

			return next(c)
		}
	}
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrIssuerMismatch):
		return "issuer_mismatch"
	case errors.Is(err, domain.ErrAudienceMismatch):
		return "audience_mismatch"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}

func validationMessage(err error) string {
	if errors.Is(err, domain.ErrTokenExpired) {
		return "token expired"
	}
	return "invalid token"
}
