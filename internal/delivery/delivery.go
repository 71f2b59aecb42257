// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving component, started by main and torn
// down through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
