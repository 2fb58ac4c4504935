// Package lifecycle holds shared constants for component startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop
// before the application gives up on it.
const DefaultTimeout = 10 * time.Second
