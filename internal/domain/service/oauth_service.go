// Package service defines the interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"
	"time"

	"passport/internal/domain/entity"
)

// TokenBundle is the result of exchanging an authorization code at the
// provider's token endpoint.
type TokenBundle struct {
	AccessToken  string        // Short-lived credential for the provider's resource APIs.
	RefreshToken string        // Present when offline access was granted. Empty otherwise.
	ExpiresIn    time.Duration // Access token lifetime as reported by the provider; zero when unreported.
	Scopes       []string      // Scopes the provider confirmed as granted; nil when unreported.
}

// OAuthUserInfo is the normalized subset of provider identity claims used to
// drive the user upsert. Absent fields stay empty; no defaulting happens here.
type OAuthUserInfo struct {
	Subject       string // Provider-side stable unique id ('sub'). Empty means the assertion is unusable.
	Email         string
	Name          string // Full display name.
	GivenName     string
	Picture       string // Avatar URL.
	EmailVerified bool
}

// OAuthProvider abstracts a remote OAuth2 identity provider. Adding a new
// provider means one adapter implementing this interface; the orchestrator
// stays untouched. Scopes and extra authorization parameters are provider
// policy, not orchestrator policy.
//
// Implementations must be safe for concurrent use by many flows.
type OAuthProvider interface {
	// BuildAuthorizationURL constructs the provider's authorization URL and a
	// random anti-forgery state token. Pure construction, no network call.
	BuildAuthorizationURL() (authURL string, state string)

	// ExchangeCode trades an authorization code for a token bundle at the
	// provider's token endpoint. Any transport or provider-rejection failure
	// is returned with the raw detail attached for logging; callers must not
	// surface it verbatim.
	ExchangeCode(ctx context.Context, code string) (*TokenBundle, error)

	// FetchUserInfo retrieves identity claims from the provider's user-info
	// endpoint using the bundle's access token.
	FetchUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)

	// ProviderID returns the stable enumerated identifier for this provider,
	// used as the foreign key in OAuthAuthorization.
	ProviderID() entity.ProviderID
}
