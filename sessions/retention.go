package sessions

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
)

// RetentionSweeper periodically prunes the session collection down to a
// configured cap, deleting the stalest sessions first.
type RetentionSweeper struct {
	controller  *Controller
	maxSessions int
	schedule    string
	logger      *log.Logger
	cron        *cron.Cron
}

// NewRetentionSweeper creates a sweeper with the given cap and cron
// schedule (e.g. "@hourly").
func NewRetentionSweeper(controller *Controller, maxSessions int, schedule string) *RetentionSweeper {
	return &RetentionSweeper{
		controller:  controller,
		maxSessions: maxSessions,
		schedule:    schedule,
		logger:      log.New(os.Stdout, "[RETENTION] ", log.LstdFlags),
	}
}

// Start registers the sweep job and begins the scheduler. A cap of zero
// or less disables the sweeper entirely.
func (r *RetentionSweeper) Start() error {
	if r.maxSessions <= 0 {
		r.logger.Printf("Session cap disabled, sweeper not started")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, r.Sweep); err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Printf("Started with cap=%d schedule=%q", r.maxSessions, r.schedule)
	return nil
}

// Stop halts the scheduler. Safe to call when never started.
func (r *RetentionSweeper) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// Sweep runs one prune pass immediately.
func (r *RetentionSweeper) Sweep() {
	if pruned := r.controller.Prune(r.maxSessions); pruned > 0 {
		r.logger.Printf("Pruned %d stale sessions", pruned)
	}
}
