package handler

import (
	"MarketAI/internal/pkg/response"
	"MarketAI/internal/service"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncSvc service.SyncService
}

func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// TriggerSync starts a marketplace sync for the calling user on demand.
func (s *SyncHandler) TriggerSync(c *gin.Context) {
	userID := c.GetUint64("user_id")
	result, err := s.syncSvc.SyncUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]any{
		"synced": result.Synced,
		"errors": result.Errors,
	})
}
