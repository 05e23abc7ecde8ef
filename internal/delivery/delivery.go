// Package delivery defines the transport surfaces the application serves on.
package delivery

import "context"

// Delivery is a serveable transport. Implementations block in Serve until
// the transport shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
