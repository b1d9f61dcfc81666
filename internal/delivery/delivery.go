// Package delivery defines the transports the application serves.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
