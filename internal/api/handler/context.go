package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/api/middleware"
	"github.com/testcreator/quiz-system/internal/core/domain"
)

// ctxClaims extracts the verified claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-nil claim set
// with a subject proves the middleware ran and the token carried an identity.
func ctxClaims(c echo.Context) (*domain.TokenClaims, error) {
	claims, _ := c.Get(middleware.ContextKeyClaims).(*domain.TokenClaims)
	if claims == nil || claims.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// viewerID identifies the viewer for view counting: the authenticated subject
// when present, otherwise the request id assigned by the RequestID middleware.
func viewerID(c echo.Context) string {
	if subject, _ := c.Get(middleware.ContextKeySubject).(string); subject != "" {
		return subject
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
