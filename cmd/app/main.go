package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Ascendant_Go/internal/bootstrap"
	"github.com/osse101/Ascendant_Go/internal/config"
	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/scheduler"
	"github.com/osse101/Ascendant_Go/internal/server"
	"github.com/osse101/Ascendant_Go/internal/sse"
	"github.com/osse101/Ascendant_Go/internal/worker"
)

const (
	sweepJobName   = "reconcile-sweep"
	sweepWorkers   = 1
	sweepQueueSize = 4
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}
	rules, err := bootstrap.LoadRules(cfg)
	if err != nil {
		return err
	}

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = storage.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	discord, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Config:   cfg,
	})
	if err != nil {
		hub.Stop()
		_ = storage.Close()
		return err
	}

	svc := engine.NewService(storage.Repository(), publisher, cat, engine.Options{
		Quota:    rules.Quota,
		Journal:  rules.EffectiveJournal(),
		Location: loc,
	})
	if err := svc.Load(ctx); err != nil {
		// The engine already fell back to a fresh level 1 state
		slog.Warn("Starting from a fresh state", "error", err)
	}
	if err := svc.Reconcile(ctx); err != nil {
		slog.Error("Startup reconcile failed", "error", err)
	}

	midnight := worker.NewMidnightReconcileWorker(svc, loc)
	midnight.Start()

	sweepPool := worker.NewPool(sweepWorkers, sweepQueueSize)
	sweepPool.Start()
	sched := scheduler.New(sweepPool)
	sched.Schedule(sweepJobName, cfg.SweepInterval, worker.JobFunc(svc.Reconcile))

	srv := server.NewServer(server.Options{
		Port:     cfg.Port,
		Version:  cfg.Version,
		Location: loc,
	}, storage, svc, cat, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		SweepPool:          sweepPool,
		ReconcileWorker:    midnight,
		Engine:             svc,
		Hub:                hub,
		Discord:            discord,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
	return err
}
