package job

import (
	"context"
	log "log/slog"

	"MarketAI/internal/api/config"
	"MarketAI/internal/pkg/logger"
	"MarketAI/internal/service"

	"github.com/google/uuid"
)

// RetentionCleanupJob prunes detailed statistic rows past the retention
// window. The per-user daily rollups are never touched.
type RetentionCleanupJob struct {
	rollupSvc service.RollupService
}

func NewRetentionCleanupJob(rollupSvc service.RollupService) *RetentionCleanupJob {
	return &RetentionCleanupJob{rollupSvc: rollupSvc}
}

func (s *RetentionCleanupJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	deleted, err := s.rollupSvc.CleanupOldStatistics(ctx, config.Cfg.Stats.RetentionDays)
	if err != nil {
		log.ErrorContext(ctx, "retention cleanup job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "retention cleanup job success", "deleted_rows", deleted)
}
