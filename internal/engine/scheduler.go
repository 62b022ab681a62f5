package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/card-ledger/internal/metrics"
)

// AlertChecker runs one alert check pass.
type AlertChecker interface {
	RunAlertCheck(ctx context.Context) (*AlertCheckResult, error)
}

// Scheduler runs the alert check pass periodically.
type Scheduler struct {
	cron    *cron.Cron
	entryID cron.EntryID
	checker AlertChecker
	timeout time.Duration
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that runs checker every interval. Each
// pass is bounded by timeout; a zero timeout means one interval.
func NewScheduler(
	checker AlertChecker,
	interval time.Duration,
	timeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("alert check interval must be positive, got %s", interval)
	}
	if timeout <= 0 {
		timeout = interval
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		checker: checker,
		timeout: timeout,
		log:     log,
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), s.runAlertCheck)
	if err != nil {
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next alert check time.
func (s *Scheduler) SyncNextRunTimestamp() {
	entry := s.cron.Entry(s.entryID)
	next := entry.Next
	if next.IsZero() && entry.Schedule != nil {
		next = entry.Schedule.Next(time.Now())
	}
	if next.IsZero() {
		return
	}
	metrics.SchedulerNextAlertCheckTimestamp.Set(float64(next.Unix()))
}

func (s *Scheduler) runAlertCheck() {
	defer s.SyncNextRunTimestamp()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.log.Info("scheduled alert check starting")
	res, err := s.checker.RunAlertCheck(ctx)
	if err != nil {
		s.log.Error("scheduled alert check failed", "error", err)
		return
	}
	s.log.Info("scheduled alert check finished", "checked", res.Checked, "triggered", res.Triggered)
}
