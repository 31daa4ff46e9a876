package cron

import (
	"fmt"
	"time"

	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// VisitorCleanupSchedule prunes idle rate-limit entries.
const VisitorCleanupSchedule = "@every 5m"

// BackupCreator is the admin operation run on the backup schedule.
type BackupCreator interface {
	CreateBackup() models.Backup
}

// VisitorCleaner forgets rate-limit visitors idle for longer than idle.
type VisitorCleaner interface {
	Cleanup(idle time.Duration) int
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler registers the backup job and, when cleaner is non-nil, the
// visitor cleanup job.
func NewScheduler(backupSchedule string, backups BackupCreator, cleaner VisitorCleaner, idle time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger: utils.Named("scheduler"),
	}

	if backupSchedule != "" {
		if _, err := s.cron.AddFunc(backupSchedule, s.backupJob(backups)); err != nil {
			return nil, fmt.Errorf("invalid backup schedule %q: %w", backupSchedule, err)
		}
	}
	if cleaner != nil {
		if _, err := s.cron.AddFunc(VisitorCleanupSchedule, s.cleanupJob(cleaner, idle)); err != nil {
			return nil, fmt.Errorf("failed to schedule visitor cleanup: %w", err)
		}
	}
	return s, nil
}

func (s *Scheduler) backupJob(backups BackupCreator) func() {
	return func() {
		b := backups.CreateBackup()
		s.logger.Info("Scheduled backup completed", zap.Int("id", b.ID), zap.String("size", b.Size))
	}
}

func (s *Scheduler) cleanupJob(cleaner VisitorCleaner, idle time.Duration) func() {
	return func() {
		if n := cleaner.Cleanup(idle); n > 0 {
			s.logger.Debug("Pruned idle rate-limit visitors", zap.Int("removed", n))
		}
	}
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler", zap.Int("jobs", s.Jobs()))
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
