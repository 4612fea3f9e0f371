package api

import (
	"net/http"

	"MarketAI/internal/api/middleware"
	"MarketAI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.Use(middleware.AuthMiddleware())
		{
			campaignGroup.POST("", group.CampaignHandler.CreateCampaign)
			campaignGroup.GET("", group.CampaignHandler.ListCampaigns)
			campaignGroup.GET("/:campaign_id", group.CampaignHandler.GetCampaign)
			campaignGroup.PUT("/:campaign_id", group.CampaignHandler.UpdateCampaign)
			campaignGroup.DELETE("/:campaign_id", group.CampaignHandler.DeleteCampaign)
			campaignGroup.POST("/:campaign_id/activate", group.CampaignHandler.ActivateCampaign)
			campaignGroup.POST("/:campaign_id/pause", group.CampaignHandler.PauseCampaign)
			campaignGroup.POST("/:campaign_id/archive", group.CampaignHandler.ArchiveCampaign)
		}

		statsGroup := apiGroup.Group("/statistics")
		statsGroup.Use(middleware.AuthMiddleware())
		{
			statsGroup.POST("/campaign-days", group.StatisticsHandler.RecordCampaignDay)
			statsGroup.POST("/product-days", group.StatisticsHandler.RecordProductDay)

			statsGroup.GET("/financial-report", group.StatisticsHandler.GetFinancialReport)
			statsGroup.GET("/dashboard", group.StatisticsHandler.GetDashboard)
			statsGroup.GET("/campaigns/:campaign_id", group.StatisticsHandler.GetCampaignDetail)
			statsGroup.GET("/campaigns/:campaign_id/chart", group.StatisticsHandler.GetChartSeries)
			statsGroup.GET("/campaigns/:campaign_id/top-products", group.StatisticsHandler.GetCampaignTopProducts)
			statsGroup.GET("/top-products", group.StatisticsHandler.GetTopProducts)
			statsGroup.GET("/daily", group.StatisticsHandler.GetDailySeries)
		}

		syncGroup := apiGroup.Group("/sync")
		syncGroup.Use(middleware.AuthMiddleware())
		{
			syncGroup.POST("/wildberries", group.SyncHandler.TriggerSync)
		}
	}

	return r
}
