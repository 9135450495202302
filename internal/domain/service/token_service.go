package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims are the decoded contents of a verified session token.
// They are ephemeral and never persisted.
type SessionClaims struct {
	UserID    uuid.UUID // The local user the token was issued for.
	ExpiresAt time.Time // Absolute expiry, always issuance + the fixed TTL.
}

// TokenService signs and verifies the self-contained session tokens handed to
// clients. Verification is stateless: any process holding the shared secret
// can trust a token without a storage round trip, which is why the token
// itself, not a server-side session id, is returned to the client.
type TokenService interface {
	// IssueSessionToken creates a signed token for the given user, expiring
	// after the service's fixed TTL.
	IssueSessionToken(userID uuid.UUID) (string, error)

	// VerifySessionToken validates signature, structure and expiry, and
	// returns the decoded claims. Expired and malformed tokens fail with the
	// same error class, deliberately indistinguishable to callers.
	VerifySessionToken(tokenString string) (*SessionClaims, error)
}
