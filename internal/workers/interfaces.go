// Package workers manages the background workers of the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every enabled worker in a unified way.
package workers

import "context"

// Worker is a background process with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until Stop is called or ctx is cancelled. Stop blocks until the
// worker has fully finished.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
