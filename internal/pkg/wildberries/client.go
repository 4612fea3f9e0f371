package wildberries

import (
	"context"
	"fmt"
	"time"

	"MarketAI/internal/api/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client talks to the Wildberries advert API. The API key is per-campaign
// (stored on the Campaign row) and passed on every call.
type Client struct {
	httpClient *resty.Client
}

func NewClient(cfg config.WildberriesConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json")

	return &Client{httpClient: client}
}

// GetCampaigns lists the advertising campaigns visible to an API key.
func (c *Client) GetCampaigns(ctx context.Context, apiKey string) ([]CampaignInfo, error) {
	var campaigns []CampaignInfo

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", apiKey).
		SetResult(&campaigns).
		Get("/api/v2/adv/list")
	if err != nil {
		return nil, errors.Wrap(err, "wildberries: list campaigns request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("wildberries: list campaigns returned %s", resp.Status())
	}

	return campaigns, nil
}

// GetCampaignStatistics fetches the counters for one campaign over an
// inclusive date range.
func (c *Client) GetCampaignStatistics(ctx context.Context, apiKey string, advertID int64, from, to time.Time) (*CampaignStats, error) {
	var stats CampaignStats

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", apiKey).
		SetQueryParams(map[string]string{
			"id":       fmt.Sprintf("%d", advertID),
			"dateFrom": from.Format(time.DateOnly),
			"dateTo":   to.Format(time.DateOnly),
		}).
		SetResult(&stats).
		Get("/api/v2/adv/stat")
	if err != nil {
		return nil, errors.Wrapf(err, "wildberries: statistics request failed for advert %d", advertID)
	}
	if resp.IsError() {
		return nil, errors.Errorf("wildberries: statistics returned %s for advert %d", resp.Status(), advertID)
	}

	return &stats, nil
}
