package domain

import "time"

const (
	RoleRegisteredUser = "RegisteredUser"
	RoleAdmin          = "Admin"
)

// MaxUsernameLength bounds the username column; longer names are rejected
// before any store lookup.
const MaxUsernameLength = 128

// KnownRole reports whether name is one of the roles this system assigns.
func KnownRole(name string) bool {
	return name == RoleRegisteredUser || name == RoleAdmin
}

// Identity models one registered account.
type Identity struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the identity carries the given role.
func (i *Identity) HasRole(name string) bool {
	for _, r := range i.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role is a named permission grouping assigned to identities at creation time.
type Role struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
