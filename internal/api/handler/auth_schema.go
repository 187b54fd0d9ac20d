package handler

import (
	"time"

	"github.com/testcreator/quiz-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
	// Violations lists the failed password-policy rules on weak-password
	// rejections; empty otherwise.
	Violations []string `json:"violations,omitempty"`
}

type registerRequest struct {
	Username    string `json:"username"     validate:"required,max=128"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required"`
	DisplayName string `json:"display_name" validate:"omitempty,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// identityResponse is the caller-facing identity representation. The password
// hash never appears here.
type identityResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string            `json:"token,omitempty"`
	User  *identityResponse `json:"user,omitempty"`
}

func toIdentityResponse(identity *domain.Identity) *identityResponse {
	if identity == nil {
		return nil
	}
	return &identityResponse{
		ID:          identity.ID,
		Username:    identity.Username,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Roles:       identity.Roles,
		CreatedAt:   identity.CreatedAt,
		UpdatedAt:   identity.UpdatedAt,
	}
}
