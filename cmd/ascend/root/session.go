package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/Ascendant_Go/internal/bootstrap"
	"github.com/osse101/Ascendant_Go/internal/catalog"
	"github.com/osse101/Ascendant_Go/internal/config"
	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/engine"
	"github.com/osse101/Ascendant_Go/internal/event"
	"github.com/osse101/Ascendant_Go/internal/logger"
	"github.com/osse101/Ascendant_Go/internal/ui"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

// session is one loaded engine plus what commands need to render its results
type session struct {
	svc engine.Service
	cat *catalog.Catalog
	loc *time.Location
	out io.Writer
}

func (s *session) now() time.Time {
	return time.Now().In(s.loc)
}

// openSession loads configuration, storage and state. Notifications raised by
// the engine are printed to the command's output as they happen.
func openSession(cmd *cobra.Command, opts *globalOptions) (*session, func(), error) {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.dbPath != "" {
		cfg.StorageDriver = config.StorageSQLite
		cfg.SQLitePath = opts.dbPath
	}
	if opts.timezone != "" {
		cfg.Timezone = opts.timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", cfg.ServiceName, Version, cfg.Environment, false), cmd.ErrOrStderr())

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	rules, err := bootstrap.LoadRules(cfg)
	if err != nil {
		return nil, nil, err
	}
	backend, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	out := cmd.OutOrStdout()
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, func(ctx context.Context, evt event.Event) error {
		n, err := event.NotificationFrom(evt)
		if err != nil {
			return nil
		}
		if n.Type != domain.NotificationItemCompleted {
			fmt.Fprintln(out, ui.Notification(n))
		}
		return nil
	})

	svc := engine.NewService(backend.Repository(), bus, cat, engine.Options{
		Quota:    rules.Quota,
		Journal:  rules.EffectiveJournal(),
		Location: loc,
	})
	cleanup := func() {
		_ = svc.Shutdown(context.Background())
		_ = backend.Close()
	}

	// A failed load would be overwritten by the next write, so refuse to continue
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	return &session{svc: svc, cat: cat, loc: loc, out: out}, cleanup, nil
}

// withSession opens a session for the duration of fn
func withSession(opts *globalOptions, fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer cleanup()
		return fn(cmd, s, args)
	}
}

// parseDeadline accepts a duration from now ("90m", "48h"), a date (end of that
// day) or an RFC 3339 timestamp. Empty means no deadline.
func parseDeadline(value string, now time.Time, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		if d <= 0 {
			return nil, fmt.Errorf("deadline %q must be in the future", value)
		}
		t := now.Add(d)
		return &t, nil
	}
	if day, err := utils.ParseDayKey(value, loc); err == nil {
		t := utils.EndOfDay(day)
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.In(loc)
		return &t, nil
	}
	return nil, fmt.Errorf("invalid deadline %q: use a duration (48h), a date (YYYY-MM-DD) or RFC 3339", value)
}

// parseDay reads an optional YYYY-MM-DD flag, defaulting to now
func parseDay(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	day, err := utils.ParseDayKey(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return day, nil
}
