// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the local account a federated identity resolves to.
// It holds only the provider-asserted profile subset; everything else about a
// person lives in downstream services that trust the session token.
type User struct {
	ID        uuid.UUID // The unique identifier for the local account.
	Email     string    // Provider-asserted email, the upsert conflict key. Empty when the provider withheld it.
	Name      string    // Display name as asserted by the provider.
	AvatarURL string    // URL of the provider-hosted profile picture.
	CreatedAt time.Time // Timestamp of when this account was first created.
	UpdatedAt time.Time // Timestamp of the last profile refresh.
}
