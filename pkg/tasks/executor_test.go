package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteAllMixedOutcomes(t *testing.T) {
	e := NewExecutor(0)

	var t2Attempts atomic.Int32
	require.NoError(t, e.AddTask("T1", func(ctx context.Context) (any, error) {
		return "ok", nil
	}))
	require.NoError(t, e.AddTask("T2", func(ctx context.Context) (any, error) {
		if t2Attempts.Add(1) <= 2 {
			return nil, errors.New("transient")
		}
		return "recovered", nil
	}, WithMaxRetries(2), WithRetryBase(time.Millisecond)))
	require.NoError(t, e.AddTask("T3", func(ctx context.Context) (any, error) {
		return nil, errors.New("permanent")
	}, WithMaxRetries(1), WithRetryBase(time.Millisecond)))

	results := e.ExecuteAll(context.Background(), false, nil)
	require.Len(t, results, 3)

	successful := e.Successful()
	failed := e.Failed()
	assert.Len(t, successful, 2)
	assert.Contains(t, successful, "T1")
	assert.Contains(t, successful, "T2")
	assert.Len(t, failed, 1)
	assert.Contains(t, failed, "T3")

	assert.Equal(t, 1, results["T1"].Attempts)
	assert.Equal(t, 3, results["T2"].Attempts, "two failures plus the success")
	assert.Equal(t, "recovered", results["T2"].Value)
	assert.Equal(t, 2, results["T3"].Attempts, "maxRetries=1 means two attempts")
	assert.Error(t, results["T3"].Err)
}

func TestAddTaskRejectsDuplicates(t *testing.T) {
	e := NewExecutor(0)
	noop := func(ctx context.Context) (any, error) { return nil, nil }

	require.NoError(t, e.AddTask("convert", noop))
	err := e.AddTask("convert", noop)
	assert.ErrorIs(t, err, ErrDuplicateTask)

	assert.Error(t, e.AddTask("", noop))
}

func TestConcurrencyCapSerializes(t *testing.T) {
	e := NewExecutor(1)

	var inFlight, maxInFlight atomic.Int32
	work := func(ctx context.Context) (any, error) {
		cur := inFlight.Add(1)
		for {
			max := maxInFlight.Load()
			if cur <= max || maxInFlight.CompareAndSwap(max, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil, nil
	}

	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, e.AddTask(name, work))
	}
	e.ExecuteAll(context.Background(), false, nil)

	assert.Equal(t, int32(1), maxInFlight.Load(), "cap=1 must serialize tasks")
}

func TestZeroCapIsUnbounded(t *testing.T) {
	e := NewExecutor(0)

	const n = 8
	var started atomic.Int32
	release := make(chan struct{})

	for i := 0; i < n; i++ {
		name := string(rune('a' + i))
		require.NoError(t, e.AddTask(name, func(ctx context.Context) (any, error) {
			started.Add(1)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return nil, nil
		}))
	}

	done := make(chan struct{})
	go func() {
		e.ExecuteAll(context.Background(), false, nil)
		close(done)
	}()

	// All tasks must be in flight simultaneously
	assert.Eventually(t, func() bool {
		return started.Load() == n
	}, time.Second, time.Millisecond)

	close(release)
	<-done
}

func TestPerTaskTimeoutRetriesAsTimeout(t *testing.T) {
	e := NewExecutor(0)

	var attempts atomic.Int32
	require.NoError(t, e.AddTask("slow", func(ctx context.Context) (any, error) {
		attempts.Add(1)
		<-ctx.Done()
		return nil, ctx.Err()
	}, WithTimeout(5*time.Millisecond), WithMaxRetries(1), WithRetryBase(time.Millisecond)))

	results := e.ExecuteAll(context.Background(), false, nil)

	result := results["slow"]
	assert.Equal(t, StatusFailed, result.Status)
	assert.ErrorIs(t, result.Err, ErrTaskTimeout)
	assert.Equal(t, int32(2), attempts.Load(), "timeouts retry like any other failure")
}

func TestStopOnFirstFailureCancelsSiblings(t *testing.T) {
	e := NewExecutor(0)

	require.NoError(t, e.AddTask("failing", func(ctx context.Context) (any, error) {
		return nil, errors.New("boom")
	}))
	require.NoError(t, e.AddTask("slow", func(ctx context.Context) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return "finished", nil
		}
	}))

	start := time.Now()
	results := e.ExecuteAll(context.Background(), true, nil)

	assert.Less(t, time.Since(start), time.Second, "sibling must be cancelled promptly")
	assert.Equal(t, StatusFailed, results["failing"].Status)
	assert.Equal(t, StatusFailed, results["slow"].Status)
}

func TestProgressCallbackReceivesFinalResults(t *testing.T) {
	e := NewExecutor(0)

	require.NoError(t, e.AddTask("a", func(ctx context.Context) (any, error) { return 1, nil }))
	require.NoError(t, e.AddTask("b", func(ctx context.Context) (any, error) { return nil, errors.New("x") }))

	var mu sync.Mutex
	seen := map[string]Status{}
	e.ExecuteAll(context.Background(), false, func(r Result) {
		mu.Lock()
		seen[r.Name] = r.Status
		mu.Unlock()
	})

	assert.Equal(t, map[string]Status{"a": StatusSuccess, "b": StatusFailed}, seen)
}

func TestExponentialBackoffTiming(t *testing.T) {
	e := NewExecutor(0)

	base := 20 * time.Millisecond
	require.NoError(t, e.AddTask("retrying", func(ctx context.Context) (any, error) {
		return nil, errors.New("always")
	}, WithMaxRetries(2), WithRetryBase(base)))

	start := time.Now()
	e.ExecuteAll(context.Background(), false, nil)
	elapsed := time.Since(start)

	// Sleeps: base×1 after attempt 1, base×2 after attempt 2
	assert.GreaterOrEqual(t, elapsed, 3*base)
}

func TestAttemptsNeverExceedBudget(t *testing.T) {
	e := NewExecutor(0)

	var attempts atomic.Int32
	require.NoError(t, e.AddTask("bounded", func(ctx context.Context) (any, error) {
		attempts.Add(1)
		return nil, errors.New("fail")
	}, WithMaxRetries(3), WithRetryBase(time.Millisecond)))

	results := e.ExecuteAll(context.Background(), false, nil)
	assert.Equal(t, int32(4), attempts.Load())
	assert.Equal(t, 4, results["bounded"].Attempts)
}
