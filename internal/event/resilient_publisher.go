package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/Ascendant_Go/internal/logger"
)

type retryItem struct {
	event    Event
	attempt  int
	lastErr  error
	notAfter time.Time
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// It implements Bus, so callers never see delivery failures.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	retryQueue chan retryItem
	shutdown   chan struct{}
	closed     atomic.Bool
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dl,
		retryQueue: make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// Publish makes one synchronous attempt and queues a retry on failure
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// PublishWithRetry makes one synchronous attempt and queues a retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	if p.closed.Load() {
		p.writeDeadLetter(event, 1, err)
		return
	}

	item := retryItem{event: event, attempt: 1, lastErr: err, notAfter: time.Now().Add(CalculateRetryDelay(p.baseDelay, 1))}
	select {
	case p.retryQueue <- item:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	log := logger.FromContext(context.Background())

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.retryQueue:
			if wait := time.Until(item.notAfter); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-timer.C:
				case <-p.shutdown:
					timer.Stop()
					p.writeDeadLetter(item.event, item.attempt, item.lastErr)
					return
				}
			}

			err := p.inner.Publish(context.Background(), item.event)
			if err == nil {
				log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
				continue
			}

			item.attempt++
			item.lastErr = err
			if item.attempt > p.maxRetries {
				log.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempt)
				p.writeDeadLetter(item.event, item.attempt, err)
				continue
			}

			log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
			item.notAfter = time.Now().Add(CalculateRetryDelay(p.baseDelay, item.attempt))
			select {
			case p.retryQueue <- item:
			default:
				p.writeDeadLetter(item.event, item.attempt, err)
			}
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, err error) {
	if werr := p.deadLetter.Write(event, attempts, err); werr != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", werr)
	}
}

// Shutdown stops the retry worker and dead-letters whatever is still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(p.shutdown)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		err = ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.retryQueue:
			p.writeDeadLetter(item.event, item.attempt, item.lastErr)
			drained++
			continue
		default:
		}
		break
	}
	if drained > 0 {
		logger.FromContext(ctx).Info(LogMsgQueueDrainedShutdown, "count", drained)
	}

	return errors.Join(err, p.deadLetter.Close())
}
