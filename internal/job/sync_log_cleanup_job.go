package job

import (
	"context"
	log "log/slog"

	"MarketAI/internal/api/config"
	"MarketAI/internal/pkg/logger"
	"MarketAI/internal/service"

	"github.com/google/uuid"
)

// SyncLogCleanupJob prunes old marketplace sync log rows.
type SyncLogCleanupJob struct {
	rollupSvc service.RollupService
}

func NewSyncLogCleanupJob(rollupSvc service.RollupService) *SyncLogCleanupJob {
	return &SyncLogCleanupJob{rollupSvc: rollupSvc}
}

func (s *SyncLogCleanupJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	deleted, err := s.rollupSvc.CleanupOldSyncLogs(ctx, config.Cfg.Sync.LogRetentionDays)
	if err != nil {
		log.ErrorContext(ctx, "sync log cleanup job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "sync log cleanup job success", "deleted_rows", deleted)
}
