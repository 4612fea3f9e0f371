package consts

const (
	DashboardStatsKey    = "stats:dashboard:"
	FinancialReportKey   = "stats:financial:"
	CampaignDetailKey    = "stats:campaign:detail:"
	TokenBlacklistPrefix = "auth:token:blacklist:"
)

const (
	WildberriesSyncLock = "sync:wildberries:lock:"
)
