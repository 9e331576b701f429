package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule starts a ticker that enqueues job every interval.
// The loop ends when the scheduler or the pool stops.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log := logger.FromContext(context.Background()).With("job", name)
		log.Info(LogMsgJobScheduled, "interval", interval)

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.Enqueue(job); err != nil {
					if errors.Is(err, worker.ErrPoolStopped) {
						return
					}
					log.Error(LogMsgEnqueueFailed, "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
