package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/notify"
	"github.com/osse101/Ascendant_Go/internal/repository"
	"github.com/osse101/Ascendant_Go/internal/scheduler"
	"github.com/osse101/Ascendant_Go/internal/server"
	"github.com/osse101/Ascendant_Go/internal/sse"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	SweepPool          *worker.Pool
	ReconcileWorker    *worker.MidnightReconcileWorker
	Engine             engine.Service
	Hub                *sse.Hub
	Discord            *notify.DiscordNotifier
	ResilientPublisher *event.ResilientPublisher
	Storage            repository.Backend
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Timers and the sweep pool (no new reconciliations)
// 3. Engine (drain the write-behind queue)
// 4. Notification consumers and the event publisher (flush pending events)
// 5. Storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.SweepPool != nil {
		c.SweepPool.Stop()
	}
	if c.ReconcileWorker != nil {
		if err := c.ReconcileWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgReconcileWorkerFailed, "error", err)
		}
	}

	if c.Engine != nil {
		if err := c.Engine.Shutdown(ctx); err != nil {
			slog.Error(LogMsgEngineShutdownFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Discord != nil {
		c.Discord.Shutdown()
	}

	// Shutdown resilient publisher last to flush pending events
	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
