package domain

import "time"

// TokenClaims is the verified content of a bearer token. It is a typed
// structure rather than a generic claim map so that presence of the identity
// and role claims is checked at compile time by consumers.
type TokenClaims struct {
	Subject   string
	Username  string
	Roles     []string
	Issuer    string
	Audience  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasRole reports whether the claim set carries the given role.
func (c *TokenClaims) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}
