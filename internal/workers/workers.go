package workers

import "context"

// Workers aggregates background workers and starts them as a group. Each
// worker runs on its own goroutine; cancelling ctx stops all of them.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into a single runnable group.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

// Run starts every worker on its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
