// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop step such as a ping or a drain.
const DefaultTimeout = 10 * time.Second
