// Package delivery contains the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started once the fx app is up.
type Delivery interface {
	Serve(ctx context.Context) error
}
