// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// CompleteLoginInput defines the data required to finish an OAuth login.
type CompleteLoginInput struct {
	Provider entity.ProviderID
	Code     string
}

// --- Output DTOs ---

// InitiateLoginOutput returns the provider consent page the client should visit.
type InitiateLoginOutput struct {
	AuthorizationURL string
}

// CompleteLoginOutput returns the session token issued after a successful login.
type CompleteLoginOutput struct {
	SessionToken string
	User         *entity.User
}

// AuthUsecase defines the interface for OAuth login operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	InitiateLogin(ctx context.Context, provider entity.ProviderID) (*InitiateLoginOutput, error)
	CompleteLogin(ctx context.Context, input *CompleteLoginInput) (*CompleteLoginOutput, error)
}
