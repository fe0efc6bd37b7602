// Package delivery defines the transport-facing contracts shared by the
// HTTP API server and the push worker.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown is handled by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
