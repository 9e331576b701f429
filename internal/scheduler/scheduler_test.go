package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Ascendant_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("sweep", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	for runs := 0; runs < 2; runs++ {
		select {
		case <-job.Done:
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}
	assert.GreaterOrEqual(t, job.RunCount.Load(), int32(2))
}

func TestScheduler_ExitsWhenPoolStops(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	pool.Stop()

	sched := New(pool)
	sched.Schedule("sweep", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})

	done := make(chan struct{})
	go func() {
		// Stop must not hang even though the loop already returned
		time.Sleep(30 * time.Millisecond)
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
