package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthAuthorization binds one local user to one external identity.
// (Provider, ProviderUserID) identifies at most one record; re-authenticating
// the same external identity refreshes tokens in place instead of creating a
// duplicate. Records are never deleted by this service.
type OAuthAuthorization struct {
	ID             uuid.UUID  // The unique ID for this authorization record itself.
	UserID         uuid.UUID  // Links the external identity to the local User.
	Provider       ProviderID // The enumerated OAuth provider, e.g. ProviderGoogle.
	ProviderUserID string     // The provider-side stable subject ('sub' claim).
	AccessToken    string     // Current access token. Opaque secret, never logged in full.
	RefreshToken   string     // Current refresh token. Present because offline access is always requested.
	ExpiresAt      *time.Time // Access token expiry, when the provider reported a lifetime.
	Scopes         []string   // Scopes the provider confirmed as granted.
	CreatedAt      time.Time  // Timestamp of the first successful login for this identity.
	UpdatedAt      time.Time  // Timestamp of the most recent successful login.
}
