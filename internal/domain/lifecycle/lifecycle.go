// Package lifecycle holds timing constants shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
