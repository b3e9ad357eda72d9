// Package delivery holds the transports that expose the storefront.
package delivery

import "context"

// Delivery is a long-running transport started by the command's fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
