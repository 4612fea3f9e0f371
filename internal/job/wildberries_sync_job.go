package job

import (
	"context"
	log "log/slog"

	"MarketAI/internal/pkg/logger"
	"MarketAI/internal/service"

	"github.com/google/uuid"
)

// WildberriesSyncJob refreshes campaign statistics from the Wildberries API
// for every user with campaigns on that marketplace.
type WildberriesSyncJob struct {
	syncSvc service.SyncService
}

func NewWildberriesSyncJob(syncSvc service.SyncService) *WildberriesSyncJob {
	return &WildberriesSyncJob{syncSvc: syncSvc}
}

func (s *WildberriesSyncJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.syncSvc.SyncAllUsers(ctx); err != nil {
		log.ErrorContext(ctx, "wildberries sync job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "wildberries sync job success")
}
