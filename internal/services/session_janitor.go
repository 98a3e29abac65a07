package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const DefaultSweepSchedule = "@every 5m"

// SessionJanitor sweeps idle sessions from a store on a cron schedule.
type SessionJanitor struct {
	store    *SessionStore
	schedule string
	logger   *slog.Logger
}

func NewSessionJanitor(store *SessionStore, schedule string, logger *slog.Logger) *SessionJanitor {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionJanitor{store: store, schedule: schedule, logger: logger}
}

// Start schedules sweeping until ctx is done.
func (janitor *SessionJanitor) Start(ctx context.Context) error {
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(janitor.schedule, janitor.run); err != nil {
		return fmt.Errorf("parse sweep schedule %q: %w", janitor.schedule, err)
	}
	scheduler.Start()

	go func() {
		<-ctx.Done()
		<-scheduler.Stop().Done()
	}()
	return nil
}

func (janitor *SessionJanitor) run() {
	removed := janitor.store.Sweep(time.Now())
	if removed > 0 {
		janitor.logger.Info("sessions: swept idle sessions", "removed", removed, "remaining", janitor.store.Len())
	}
}
