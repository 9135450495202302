package entity

// ProviderID is the stable enumerated identifier of an external OAuth
// provider. It is persisted as a foreign key, so values must never be reused.
type ProviderID int

const (
	// ProviderUnknown marks an unrecognized provider name from the HTTP layer.
	ProviderUnknown ProviderID = 0
	// ProviderGoogle identifies Google as an OAuth provider.
	ProviderGoogle ProviderID = 1
)

// ProviderIDFromName maps a URL path segment to a ProviderID.
func ProviderIDFromName(name string) ProviderID {
	switch name {
	case "google":
		return ProviderGoogle
	default:
		return ProviderUnknown
	}
}

// String returns the canonical lowercase provider name.
func (p ProviderID) String() string {
	switch p {
	case ProviderGoogle:
		return "google"
	default:
		return "unknown"
	}
}
