package worker

import "context"

// Worker is a long-running background task. Run blocks until ctx is
// cancelled and returns the cancellation cause.
type Worker interface {
	Run(ctx context.Context) error
}
