package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/service"
)

func newTestTokens(t *testing.T) *service.TokenService {
	t.Helper()
	tokens, err := service.NewTokenService(service.TokenConfig{
		Key:      []byte("test-signing-key"),
		Issuer:   "quiz-system",
		Audience: "quiz-system",
		Lifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func signTestToken(t *testing.T, tokens *service.TokenService) string {
	t.Helper()
	signed, err := tokens.IssueToken(&domain.Identity{
		ID:       "id-1",
		Username: "alice",
		Roles:    []string{domain.RoleRegisteredUser},
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := newTestTokens(t)
	signed := signTestToken(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(ContextKeySubject) != "id-1" {
			t.Fatalf("subject not set")
		}
		if c.Get(ContextKeyUsername) != "alice" {
			t.Fatalf("username not set")
		}
		claims, ok := c.Get(ContextKeyClaims).(*domain.TokenClaims)
		if !ok || !claims.HasRole(domain.RoleRegisteredUser) {
			t.Fatalf("claims not set: %+v", c.Get(ContextKeyClaims))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestTokens(t))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestTokens(t))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestTokens(t))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// stubTokenService lets tests force a specific validation failure.
type stubTokenService struct {
	err error
}

func (s *stubTokenService) IssueToken(*domain.Identity) (string, error) { return "", s.err }

func (s *stubTokenService) ValidateToken(string) (*domain.TokenClaims, error) {
	return nil, s.err
}

func TestAuthMiddleware_ExpiredTokenMessage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubTokenService{err: domain.ErrTokenExpired})
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
	if httpErr.Message != "token expired" {
		t.Fatalf("expected expired message, got %v", httpErr.Message)
	}
}

// The 401 body must not disclose which check failed beyond expiry.
func TestAuthMiddleware_OpaqueFailureMessage(t *testing.T) {
	for _, cause := range []error{
		domain.ErrBadSignature,
		domain.ErrIssuerMismatch,
		domain.ErrAudienceMismatch,
		domain.ErrTokenMalformed,
	} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(&stubTokenService{err: cause})
		handler := mw(func(c echo.Context) error { return nil })

		err := handler(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("cause %v: expected HTTPError, got %v", cause, err)
		}
		if httpErr.Message != "invalid token" {
			t.Fatalf("cause %v: expected opaque message, got %v", cause, httpErr.Message)
		}
	}
}
