// Package delivery defines the transports the application can be served through.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
