package wildberries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MarketAI/internal/api/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(config.WildberriesConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		RetryCount:     0,
	})
}

func TestGetCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/adv/list", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"advertId": 101, "name": "Autumn promo", "status": "active", "budget": "5000", "spent": "1200.50"}]`))
	}))
	defer server.Close()

	campaigns, err := newTestClient(server).GetCampaigns(context.Background(), "test-key")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	assert.Equal(t, int64(101), campaigns[0].AdvertID)
	assert.Equal(t, "Autumn promo", campaigns[0].Name)
	assert.True(t, campaigns[0].Spent.Equal(decimal.NewFromFloat(1200.50)))
}

func TestGetCampaignStatistics(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/adv/stat", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("id"))
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("dateFrom"))
		assert.Equal(t, "2026-08-02", r.URL.Query().Get("dateTo"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"views": 1500, "clicks": 60, "orders": 5, "sum": "900", "spent": "300",
			"days": [
				{"date": "2026-08-01", "views": 700, "clicks": 25, "orders": 2, "sum": "400", "spent": "150", "atbs": 8},
				{"date": "2026-08-02", "views": 800, "clicks": 35, "orders": 3, "sum": "500", "spent": "150", "atbs": 10}
			]
		}`))
	}))
	defer server.Close()

	stats, err := newTestClient(server).GetCampaignStatistics(context.Background(), "test-key", 101, from, to)
	require.NoError(t, err)

	assert.Equal(t, int64(1500), stats.Views)
	require.Len(t, stats.Days, 2)
	assert.Equal(t, "2026-08-01", stats.Days[0].Date)
	assert.Equal(t, int64(8), stats.Days[0].AddToCart)
	assert.True(t, stats.Days[1].Sum.Equal(decimal.NewFromInt(500)))
}

func TestGetCampaignStatisticsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetCampaignStatistics(context.Background(), "bad-key", 101, time.Now(), time.Now())
	assert.Error(t, err)
}
