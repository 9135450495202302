// Package delivery defines the contract every transport frontend fulfills.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the server
// stops; shutdown is driven by the application lifecycle, not the caller.
type Delivery interface {
	Serve(ctx context.Context) error
}
