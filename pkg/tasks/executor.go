// Package tasks provides a parallel task executor with bounded concurrency,
// exponential-backoff retries, and per-task timeouts. It is the only
// fan-out point inside a phase; conversions of independent manifests run
// through it.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTaskTimeout marks an attempt that exceeded its per-task timeout.
// Timeouts are logged distinctly but retried like any other failure.
var ErrTaskTimeout = errors.New("task attempt timed out")

// ErrDuplicateTask indicates two tasks sharing a name within one batch.
var ErrDuplicateTask = errors.New("duplicate task name")

// Status is the lifecycle state of one task.
type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRetrying Status = "retrying"
)

// Func is the unit of work. The context carries the per-attempt timeout and
// batch cancellation.
type Func func(ctx context.Context) (any, error)

// Result is the outcome of one task after all attempts.
type Result struct {
	Name     string
	Status   Status
	Value    any
	Err      error
	Attempts int
	Elapsed  time.Duration
}

type task struct {
	name       string
	fn         Func
	maxRetries int
	retryBase  time.Duration
	timeout    time.Duration
}

// Option tunes one task.
type Option func(*task)

// WithMaxRetries sets how many retries follow the first attempt.
func WithMaxRetries(n int) Option {
	return func(t *task) { t.maxRetries = n }
}

// WithRetryBase sets the backoff base: sleep retryBase, then double it between
// attempts.
func WithRetryBase(d time.Duration) Option {
	return func(t *task) { t.retryBase = d }
}

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) Option {
	return func(t *task) { t.timeout = d }
}

// Executor collects a batch of named tasks and runs them concurrently.
// Not safe for concurrent AddTask/ExecuteAll; build the batch, run it once,
// then read the results.
type Executor struct {
	concurrency int64
	tasks       []*task
	names       map[string]bool

	mu      sync.Mutex
	results map[string]*Result
}

// NewExecutor creates an executor. concurrency caps in-flight tasks:
// 0 means unbounded, 1 serializes the batch.
func NewExecutor(concurrency int) *Executor {
	return &Executor{
		concurrency: int64(concurrency),
		names:       make(map[string]bool),
		results:     make(map[string]*Result),
	}
}

// AddTask registers a task. Names must be unique within the batch.
func (e *Executor) AddTask(name string, fn Func, opts ...Option) error {
	if name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if e.names[name] {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, name)
	}
	e.names[name] = true

	t := &task{
		name:      name,
		fn:        fn,
		retryBase: 1 * time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	e.tasks = append(e.tasks, t)
	e.results[name] = &Result{Name: name, Status: StatusPending}
	return nil
}

// ExecuteAll runs every task and returns the results by name. All tasks
// launch concurrently, bounded by the semaphore when a cap is set. When
// stopOnFirstFailure is true, the first task to exhaust its retries cancels
// the rest of the batch. progress, when non-nil, receives each final result
// as it lands; callers must not rely on any ordering between tasks.
func (e *Executor) ExecuteAll(ctx context.Context, stopOnFirstFailure bool, progress func(Result)) map[string]*Result {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sem *semaphore.Weighted
	if e.concurrency > 0 {
		sem = semaphore.NewWeighted(e.concurrency)
	}

	var wg sync.WaitGroup
	for _, t := range e.tasks {
		wg.Add(1)
		go func(t *task) {
			defer wg.Done()

			if sem != nil {
				if err := sem.Acquire(runCtx, 1); err != nil {
					e.finish(t.name, &Result{
						Name:   t.name,
						Status: StatusFailed,
						Err:    fmt.Errorf("task %s cancelled before start: %w", t.name, err),
					}, progress)
					return
				}
				defer sem.Release(1)
			}

			result := e.runTask(runCtx, t)
			if result.Status == StatusFailed && stopOnFirstFailure {
				cancel()
			}
			e.finish(t.name, result, progress)
		}(t)
	}
	wg.Wait()

	return e.snapshot()
}

// runTask performs up to maxRetries+1 attempts with exponential backoff.
func (e *Executor) runTask(ctx context.Context, t *task) *Result {
	start := time.Now()
	result := &Result{Name: t.name}

	for attempt := 0; attempt <= t.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := t.retryBase << (attempt - 1)
			e.setStatus(t.name, StatusRetrying)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				result.Status = StatusFailed
				result.Err = ctx.Err()
				result.Attempts = attempt
				result.Elapsed = time.Since(start)
				return result
			}
		}

		e.setStatus(t.name, StatusRunning)
		result.Attempts = attempt + 1

		value, err := e.runAttempt(ctx, t)
		if err == nil {
			result.Status = StatusSuccess
			result.Value = value
			result.Elapsed = time.Since(start)
			return result
		}
		result.Err = err

		if errors.Is(err, ErrTaskTimeout) {
			slog.Warn("Task attempt timed out",
				"task", t.name,
				"attempt", attempt+1,
				"timeout", t.timeout)
		} else {
			slog.Warn("Task attempt failed",
				"task", t.name,
				"attempt", attempt+1,
				"error", err)
		}

		// Batch cancellation is not retryable
		if ctx.Err() != nil {
			break
		}
	}

	result.Status = StatusFailed
	result.Elapsed = time.Since(start)
	return result
}

// runAttempt executes one attempt, converting a deadline hit into
// ErrTaskTimeout.
func (e *Executor) runAttempt(ctx context.Context, t *task) (any, error) {
	attemptCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	value, err := t.fn(attemptCtx)
	if err != nil {
		if t.timeout > 0 && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w after %s", ErrTaskTimeout, t.timeout)
		}
		return nil, err
	}
	return value, nil
}

func (e *Executor) setStatus(name string, status Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results[name].Status = status
}

func (e *Executor) finish(name string, result *Result, progress func(Result)) {
	e.mu.Lock()
	e.results[name] = result
	e.mu.Unlock()

	if progress != nil {
		progress(*result)
	}
}

func (e *Executor) snapshot() map[string]*Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]*Result, len(e.results))
	for k, v := range e.results {
		out[k] = v
	}
	return out
}

// Successful returns the results of tasks that completed successfully.
func (e *Executor) Successful() map[string]*Result {
	return e.filter(StatusSuccess)
}

// Failed returns the results of tasks that exhausted their attempts.
func (e *Executor) Failed() map[string]*Result {
	return e.filter(StatusFailed)
}

func (e *Executor) filter(status Status) map[string]*Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]*Result)
	for name, result := range e.results {
		if result.Status == status {
			out[name] = result
		}
	}
	return out
}
