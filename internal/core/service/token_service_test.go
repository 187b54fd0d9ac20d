package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Key:      []byte("test-signing-key"),
		Issuer:   "quiz-system",
		Audience: "quiz-system",
		Lifetime: 2 * time.Hour,
	}
}

func testIdentity() *domain.Identity {
	return &domain.Identity{
		ID:       "01F8MECHZX3TBDSZ7XRADM79XE",
		Username: "alice",
		Roles:    []string{domain.RoleRegisteredUser},
	}
}

func TestNewTokenService_RejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TokenConfig)
	}{
		{"missing key", func(c *TokenConfig) { c.Key = nil }},
		{"missing issuer", func(c *TokenConfig) { c.Issuer = "" }},
		{"missing audience", func(c *TokenConfig) { c.Audience = "" }},
		{"zero lifetime", func(c *TokenConfig) { c.Lifetime = 0 }},
		{"negative lifetime", func(c *TokenConfig) { c.Lifetime = -time.Minute }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testTokenConfig()
			tc.mutate(&cfg)
			_, err := NewTokenService(cfg)
			assert.Error(t, err)
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	signed, err := svc.IssueToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "01F8MECHZX3TBDSZ7XRADM79XE", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{domain.RoleRegisteredUser}, claims.Roles)
	assert.Equal(t, "quiz-system", claims.Issuer)
	assert.Equal(t, "quiz-system", claims.Audience)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestTokenService_IssueToken_RequiresIdentity(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	_, err = svc.IssueToken(nil)
	assert.Error(t, err)

	_, err = svc.IssueToken(&domain.Identity{Username: "no-id"})
	assert.Error(t, err)
}

func TestTokenService_ValidateToken_ExpiredExactly(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	issued := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	signed, err := svc.IssueToken(testIdentity())
	require.NoError(t, err)

	// Valid right up to the expiration instant.
	svc.now = func() time.Time { return issued.Add(2*time.Hour - time.Second) }
	_, err = svc.ValidateToken(signed)
	assert.NoError(t, err)

	// One second past expiry is rejected. No clock-skew leeway.
	svc.now = func() time.Time { return issued.Add(2*time.Hour + time.Second) }
	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenService_ValidateToken_WrongKey(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Key = []byte("a-different-key")
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	signed, err := other.IssueToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, domain.ErrBadSignature)
}

func TestTokenService_ValidateToken_IssuerMismatch(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Issuer = "some-other-system"
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	signed, err := other.IssueToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, domain.ErrIssuerMismatch)
}

func TestTokenService_ValidateToken_AudienceMismatch(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.Audience = "some-other-audience"
	other, err := NewTokenService(otherCfg)
	require.NoError(t, err)

	signed, err := other.IssueToken(testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, domain.ErrAudienceMismatch)
}

func TestTokenService_ValidateToken_Malformed(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.ValidateToken(raw)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, "raw=%q", raw)
	}
}

func TestTokenService_ValidateToken_RejectsAlgNone(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	cfg := testTokenConfig()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "01F8MECHZX3TBDSZ7XRADM79XE",
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(raw)
	assert.Error(t, err)
}

func TestTokenService_ValidateToken_RequiresExpiration(t *testing.T) {
	svc, err := NewTokenService(testTokenConfig())
	require.NoError(t, err)

	cfg := testTokenConfig()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "01F8MECHZX3TBDSZ7XRADM79XE",
		Issuer:   cfg.Issuer,
		Audience: jwt.ClaimStrings{cfg.Audience},
	})
	raw, err := token.SignedString(cfg.Key)
	require.NoError(t, err)

	_, err = svc.ValidateToken(raw)
	assert.Error(t, err)
}
