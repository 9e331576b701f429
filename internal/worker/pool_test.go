package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEveryJobBeforeStopReturns(t *testing.T) {
	var executed int32
	pool := NewPool(2, 4)
	pool.Start()

	for i := 0; i < 20; i++ {
		require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
			atomic.AddInt32(&executed, 1)
			return nil
		})))
	}
	pool.Stop()

	assert.Equal(t, int32(20), atomic.LoadInt32(&executed))
}

func TestPool_SingleWorkerPreservesOrder(t *testing.T) {
	pool := NewPool(1, 100)
	pool.Start()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 50; i++ {
		i := i
		require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})))
	}
	pool.Stop()

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	pool := NewPool(1, 2)
	pool.Start()

	var ran atomic.Bool
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") })))
	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { ran.Store(true); return nil })))
	pool.Stop()

	assert.True(t, ran.Load())
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	err := pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_TryEnqueueDoesNotWait(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start()

	require.NoError(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})))
	<-started
	require.NoError(t, pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil })))

	err := pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	pool.Stop()

	err = pool.TryEnqueue(JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)
}
