package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrAuthorizationNotFound is returned when no authorization record exists
// for a given provider identity.
var ErrAuthorizationNotFound = errors.New("oauth authorization not found")

// AuthRepository defines the persistence operations for OAuth authorization links.
type AuthRepository interface {
	// UpsertAuthorization persists an authorization record, merging on the
	// provider user id conflict key. The operation is atomic: a single
	// statement, so concurrent re-logins of the same identity cannot
	// interleave into a corrupt row. The passed entity is refreshed with the
	// stored row's generated values.
	UpsertAuthorization(ctx context.Context, auth *entity.OAuthAuthorization) error

	// FindAuthorization retrieves an authorization record by provider and
	// provider-side subject id.
	FindAuthorization(ctx context.Context, provider entity.ProviderID, providerUserID string) (*entity.OAuthAuthorization, error)
}
