package api

import "MarketAI/internal/api/handler"

// HandlersGroup bundles every initialized handler for the router.
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	CampaignHandler   *handler.CampaignHandler
	StatisticsHandler *handler.StatisticsHandler
	SyncHandler       *handler.SyncHandler
}
