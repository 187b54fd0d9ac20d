package ports

import (
	"context"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// IdentityRepository defines persistence operations for identity records.
//
// The store owns the uniqueness invariant: Create must fail with
// domain.ErrDuplicateUsername or domain.ErrDuplicateEmail when a concurrent
// writer got there first, even if the caller's pre-checks saw no conflict.
// Role names travel embedded in the Identity so identity and role assignment
// commit together or not at all.
type IdentityRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
}

// RoleRepository manages the known role definitions.
type RoleRepository interface {
	// EnsureRoles upserts the given role definitions; called once at startup.
	EnsureRoles(ctx context.Context, roles []domain.Role) error
	FindRole(ctx context.Context, name string) (*domain.Role, error)
}
