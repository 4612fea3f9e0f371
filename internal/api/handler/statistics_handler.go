package handler

import (
	"MarketAI/internal/api/dto"
	"MarketAI/internal/pkg/response"
	"MarketAI/internal/service"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsSvc service.StatisticsService
	statEntrySvc  service.StatEntryService
}

func NewStatisticsHandler(statisticsSvc service.StatisticsService, statEntrySvc service.StatEntryService) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsSvc: statisticsSvc,
		statEntrySvc:  statEntrySvc,
	}
}

func (s *StatisticsHandler) RecordCampaignDay(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var entry dto.CampaignDayDTO
	err := c.ShouldBind(&entry)
	if err != nil {
		response.Error(c, err)
		return
	}
	stat, err := s.statEntrySvc.RecordCampaignDay(c.Request.Context(), userID, &entry)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stat)
}

func (s *StatisticsHandler) RecordProductDay(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var entry dto.ProductDayDTO
	err := c.ShouldBind(&entry)
	if err != nil {
		response.Error(c, err)
		return
	}
	stat, err := s.statEntrySvc.RecordProductDay(c.Request.Context(), userID, &entry)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stat)
}

func (s *StatisticsHandler) GetFinancialReport(c *gin.Context) {
	userID := c.GetUint64("user_id")
	report, err := s.statisticsSvc.FinancialReport(c.Request.Context(), userID,
		c.Query("start_date"), c.Query("end_date"), c.Query("marketplace"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *StatisticsHandler) GetDashboard(c *gin.Context) {
	userID := c.GetUint64("user_id")
	dashboard, err := s.statisticsSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dashboard)
}

func (s *StatisticsHandler) GetCampaignDetail(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	detail, err := s.statisticsSvc.CampaignDetail(c.Request.Context(), userID, campaignID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *StatisticsHandler) GetChartSeries(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	series, err := s.statisticsSvc.ChartSeries(c.Request.Context(), userID, campaignID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, series)
}

func (s *StatisticsHandler) GetTopProducts(c *gin.Context) {
	userID := c.GetUint64("user_id")
	products, err := s.statisticsSvc.TopProducts(c.Request.Context(), userID, 0,
		c.Query("limit"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, products)
}

func (s *StatisticsHandler) GetCampaignTopProducts(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	products, err := s.statisticsSvc.TopProducts(c.Request.Context(), userID, campaignID,
		c.Query("limit"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, products)
}

func (s *StatisticsHandler) GetDailySeries(c *gin.Context) {
	userID := c.GetUint64("user_id")
	series, err := s.statisticsSvc.DailySeries(c.Request.Context(), userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, series)
}
