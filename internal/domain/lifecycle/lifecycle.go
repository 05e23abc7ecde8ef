// Package lifecycle holds shared lifecycle constants for graceful shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds shutdown work such as draining the HTTP server.
const DefaultTimeout = 10 * time.Second
