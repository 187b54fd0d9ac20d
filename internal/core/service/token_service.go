package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// TokenConfig is the immutable signing configuration. It is built once from
// process configuration and passed in by value; the key is never read from
// ambient global state and never logged.
type TokenConfig struct {
	Key      []byte
	Issuer   string
	Audience string
	Lifetime time.Duration
}

// TokenService issues and validates HS256-signed bearer tokens.
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// identityClaims is the wire shape of the claim set: the registered claims
// plus the identity and role claims this system adds.
type identityClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// NewTokenService validates the configuration and returns a TokenService.
// A missing key or a non-positive lifetime is a construction error:
// infinite-lifetime tokens are disallowed.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Key) == 0 {
		return nil, errors.New("token service: signing key is required")
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, errors.New("token service: issuer and audience are required")
	}
	if cfg.Lifetime <= 0 {
		return nil, fmt.Errorf("token service: lifetime must be positive, got %s", cfg.Lifetime)
	}
	return &TokenService{cfg: cfg, now: time.Now}, nil
}

// IssueToken signs a claim set for the identity: sub, username, one roles
// claim carrying the full role set, iss, aud, iat, and exp at iat plus the
// configured lifetime. Nothing is persisted.
func (s *TokenService) IssueToken(identity *domain.Identity) (string, error) {
	if identity == nil || identity.ID == "" {
		return "", errors.New("token service: identity with a stable id is required")
	}

	now := s.now().UTC()
	claims := identityClaims{
		Username: identity.Username,
		Roles:    append([]string(nil), identity.Roles...),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, issuer, audience, and expiration, and
// reconstructs the caller's claims. Expiry is exact: no clock-skew leeway is
// granted, so a token is rejected the instant its expiration passes. Every
// failure maps to one of the domain token errors.
func (s *TokenService) ValidateToken(raw string) (*domain.TokenClaims, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			return s.cfg.Key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid {
		return nil, domain.ErrBadSignature
	}

	return &domain.TokenClaims{
		Subject:   claims.Subject,
		Username:  claims.Username,
		Roles:     claims.Roles,
		Issuer:    claims.Issuer,
		Audience:  s.cfg.Audience,
		IssuedAt:  numericDateTime(claims.IssuedAt),
		ExpiresAt: numericDateTime(claims.ExpiresAt),
	}, nil
}

// classifyTokenError maps golang-jwt parse errors onto the domain taxonomy so
// no unclassified failure escapes to callers.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domain.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return domain.ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return domain.ErrAudienceMismatch
	default:
		return domain.ErrTokenMalformed
	}
}

func numericDateTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
