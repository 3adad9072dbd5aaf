package services

import (
	"github.com/campushq/teambuilder/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler owns the background maintenance schedule.
type Scheduler struct {
	cron *cron.Cron
	db   *gorm.DB
}

func newScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		db:   db,
	}
}

func (r *Scheduler) start() {
	// Daily at 03:30, off-peak for a university audience
	if _, err := r.cron.AddFunc("30 3 * * *", func() {
		runLogCleanup(r.db)
	}); err != nil {
		logger.Errorf("[Scheduler] Failed to register cleanup job: %v", err)
		return
	}

	// Run once on startup so a long-stopped instance catches up
	go runLogCleanup(r.db)

	r.cron.Start()
	logger.Infof("[Scheduler] Maintenance schedule started")
}

// Stop halts the schedule and waits for running jobs to finish.
func (r *Scheduler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}
