package ports

import (
	"context"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	// Roles to assign at creation. Empty means the default RegisteredUser set.
	Roles []string
}

// AuthService covers account registration and password login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	// Login verifies the password and returns a signed bearer token for the
	// identity alongside the identity itself.
	Login(ctx context.Context, username, password string) (string, *domain.Identity, error)
}
