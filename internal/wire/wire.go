package wire

import (
	"MarketAI/internal/api"
	"MarketAI/internal/api/config"
	"MarketAI/internal/api/handler"
	"MarketAI/internal/job"
	"MarketAI/internal/pkg/cron"
	"MarketAI/internal/pkg/kafka"
	"MarketAI/internal/pkg/wildberries"
	"MarketAI/internal/repository"
	"MarketAI/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top-level component the app runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	campaignRepo := repository.NewCampaignRepo(db)
	campaignStatRepo := repository.NewCampaignStatisticRepo(db)
	productStatRepo := repository.NewProductStatisticRepo(db)
	dailyStatRepo := repository.NewDailyUserStatisticRepo(db)
	syncLogRepo := repository.NewSyncLogRepo(db)

	wbClient := wildberries.NewClient(cfg.Wildberries)

	userService := service.NewUserService(userRepo)
	campaignService := service.NewCampaignService(campaignRepo)
	statEntryService := service.NewStatEntryService(campaignRepo, campaignStatRepo, productStatRepo)
	statisticsService := service.NewStatisticsService(campaignRepo, campaignStatRepo, productStatRepo, dailyStatRepo)
	rollupService := service.NewRollupService(userRepo, campaignRepo, campaignStatRepo, productStatRepo, dailyStatRepo, syncLogRepo)
	syncService := service.NewSyncService(campaignRepo, syncLogRepo, statEntryService, wbClient)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		CampaignHandler:   handler.NewCampaignHandler(campaignService),
		StatisticsHandler: handler.NewStatisticsHandler(statisticsService, statEntryService),
		SyncHandler:       handler.NewSyncHandler(syncService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, statEntryService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewDailyRollupJob(rollupService),
		job.NewRetentionCleanupJob(rollupService),
		job.NewWildberriesSyncJob(syncService),
		job.NewSyncLogCleanupJob(rollupService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
