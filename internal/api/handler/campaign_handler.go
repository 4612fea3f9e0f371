package handler

import (
	"context"
	"strconv"

	"MarketAI/internal/api/dto"
	"MarketAI/internal/pkg/response"
	"MarketAI/internal/service"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

func (s *CampaignHandler) CreateCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var createDTO dto.CreateCampaignDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	campaign, err := s.campaignSvc.CreateCampaign(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) UpdateCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var updateDTO dto.UpdateCampaignDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	campaign, err := s.campaignSvc.UpdateCampaign(c.Request.Context(), userID, campaignID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) DeleteCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err = s.campaignSvc.DeleteCampaign(c.Request.Context(), userID, campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) GetCampaign(c *gin.Context) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	campaign, err := s.campaignSvc.GetCampaign(c.Request.Context(), userID, campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) ListCampaigns(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var query dto.CampaignListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	campaigns, err := s.campaignSvc.ListCampaigns(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

func (s *CampaignHandler) ActivateCampaign(c *gin.Context) {
	s.transition(c, s.campaignSvc.ActivateCampaign)
}

func (s *CampaignHandler) PauseCampaign(c *gin.Context) {
	s.transition(c, s.campaignSvc.PauseCampaign)
}

func (s *CampaignHandler) ArchiveCampaign(c *gin.Context) {
	s.transition(c, s.campaignSvc.ArchiveCampaign)
}

func (s *CampaignHandler) transition(c *gin.Context, fn func(ctx context.Context, userID, campaignID uint64) error) {
	userID := c.GetUint64("user_id")
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = fn(c.Request.Context(), userID, campaignID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
