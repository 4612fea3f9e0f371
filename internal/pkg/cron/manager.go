package cron

import (
	log "log/slog"

	"MarketAI/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	dailyRollupJob      *job.DailyRollupJob
	retentionCleanupJob *job.RetentionCleanupJob
	wildberriesSyncJob  *job.WildberriesSyncJob
	syncLogCleanupJob   *job.SyncLogCleanupJob
}

func NewCronManager(
	dailyRollupJob *job.DailyRollupJob,
	retentionCleanupJob *job.RetentionCleanupJob,
	wildberriesSyncJob *job.WildberriesSyncJob,
	syncLogCleanupJob *job.SyncLogCleanupJob,
) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		dailyRollupJob:      dailyRollupJob,
		retentionCleanupJob: retentionCleanupJob,
		wildberriesSyncJob:  wildberriesSyncJob,
		syncLogCleanupJob:   syncLogCleanupJob,
	}
}

// RegisterJobs wires every scheduled job. The rollup runs shortly after
// midnight so yesterday's statistics are complete; the cleanups run during
// the quiet hours.
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 30 0 * * *", s.dailyRollupJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 0 2 1 * *", s.retentionCleanupJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 0 * * * *", s.wildberriesSyncJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("0 0 4 * * 0", s.syncLogCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
