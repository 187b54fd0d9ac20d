package ports

import (
	"github.com/testcreator/quiz-system/internal/core/domain"
)

// TokenService issues and validates signed bearer tokens.
//
// Issued tokens are stateless: nothing is persisted, and a token stays valid
// until its expiration instant regardless of later account changes. There is
// no revocation path short of rotating the signing key.
type TokenService interface {
	// IssueToken signs a token embedding the identity's id, username, and
	// role claims, expiring after the configured lifetime.
	IssueToken(identity *domain.Identity) (string, error)
	// ValidateToken verifies signature, issuer, audience, and expiration and
	// reconstructs the caller's claims. Every failure is one of the token
	// errors declared in the domain package.
	ValidateToken(raw string) (*domain.TokenClaims, error)
}
