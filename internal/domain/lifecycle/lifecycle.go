// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as DB pings and
// graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
