// Package fanout provides a settle-all primitive: launch N independent
// tasks, wait for every one of them regardless of individual failure, and
// collect the outcomes in dispatch order.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Outcome is the settled result of one task.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Task is one unit of concurrent work.
type Task[T any] func(ctx context.Context) (T, error)

// All runs every task concurrently and waits until all of them settle.
// There is no fail-fast short-circuit: one slow or failing task never blocks
// or corrupts the others. Outcomes are indexed by dispatch order, never by
// completion order, so the output is deterministic given deterministic tasks.
func All[T any](ctx context.Context, tasks []Task[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		i, task := i, task
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = settle(ctx, task)
		}()
	}
	wg.Wait()

	return outcomes
}

// settle runs one task, converting a panic into an error so a misbehaving
// task still settles instead of taking down its siblings.
func settle[T any](ctx context.Context, task Task[T]) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	out.Value, out.Err = task(ctx)
	return out
}
