package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

// AuthService implements registration and login.
//
// Registration order is deliberate: the username conflict is reported before
// the email conflict, and both before password-policy feedback, so a caller
// learns about a conflicting account before being asked to fix password
// strength. The pre-checks are a fast path only; the store's uniqueness
// constraint is the correctness mechanism under concurrent registration.
type AuthService struct {
	repo   ports.IdentityRepository
	tokens ports.TokenService
	policy PasswordPolicy
	logger zerolog.Logger
}

func NewAuthService(repo ports.IdentityRepository, tokens ports.TokenService, policy PasswordPolicy, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, policy: policy, logger: logger}
}

// Register creates a new identity with the requested role set.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(username) > domain.MaxUsernameLength {
		return nil, domain.ErrInvalidCredentials
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleRegisteredUser}
	}
	for _, r := range roles {
		if !domain.KnownRole(r) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRole, r)
		}
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, fmt.Errorf("register: lookup username: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	if violations := s.policy.Check(input.Password); len(violations) > 0 {
		return nil, &domain.WeakPasswordError{Violations: violations}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	identity := &domain.Identity{
		ID:           ulid.Make().String(),
		Username:     username,
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store enforces uniqueness at commit time; a duplicate discovered
	// here (lost race against a concurrent registration) surfaces as the same
	// error kind the pre-checks would have produced.
	created, err := s.repo.Create(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("register: create identity: %w", err)
	}

	s.logger.Info().
		Str("identity_id", created.ID).
		Str("username", created.Username).
		Strs("roles", created.Roles).
		Msg("identity registered")

	return created, nil
}

// Login authenticates a username/password pair and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Identity, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: lookup username: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(identity)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("identity_id", identity.ID).Msg("login succeeded")

	return token, identity, nil
}
