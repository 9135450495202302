package usecase

import (
	"context"

	"passport/internal/domain/entity"
)

// UpsertUserInput carries the profile attributes learned from an identity
// provider. Empty fields other than Email leave the stored value untouched.
type UpsertUserInput struct {
	Email     string
	Name      string
	AvatarURL string
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	// UpsertUser creates the account on first login and refreshes the
	// profile on every subsequent login, keyed by email.
	UpsertUser(ctx context.Context, input *UpsertUserInput) (*entity.User, error)
	// GetUserByToken verifies a session token and resolves its subject.
	GetUserByToken(ctx context.Context, tokenString string) (*entity.User, error)
}
