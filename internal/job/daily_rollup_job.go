package job

import (
	"context"
	log "log/slog"
	"time"

	"MarketAI/internal/pkg/logger"
	"MarketAI/internal/service"

	"github.com/google/uuid"
)

// DailyRollupJob materializes yesterday's per-user statistics after midnight.
type DailyRollupJob struct {
	rollupSvc service.RollupService
}

func NewDailyRollupJob(rollupSvc service.RollupService) *DailyRollupJob {
	return &DailyRollupJob{rollupSvc: rollupSvc}
}

func (s *DailyRollupJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	yesterday := time.Now().AddDate(0, 0, -1)
	result, err := s.rollupSvc.RollupDate(ctx, yesterday)
	if err != nil {
		log.ErrorContext(ctx, "daily rollup job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "daily rollup job success",
		"date", result.Date.Format(time.DateOnly),
		"processed", result.Processed,
		"total", result.Total,
	)
}
