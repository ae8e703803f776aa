package driven

import "context"

// ChangeNotifier delivers a signal each time the records input changes.
// Watch blocks until ctx is canceled or the notifier fails, and calls
// onChange from a single goroutine, never concurrently.
type ChangeNotifier interface {
	Watch(ctx context.Context, onChange func()) error
}
