package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCampaignStatEvent(t *testing.T) {
	msg := &sarama.ConsumerMessage{Value: []byte(`{
		"event_id": "evt-1",
		"source": "wildberries-connector",
		"payload": {
			"campaign_id": 7,
			"date": "2026-08-10",
			"impressions": 1000,
			"clicks": 40,
			"spent": "120.50",
			"revenue": "300"
		}
	}`)}

	event, err := ToCampaignStatEvent(msg)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", event.EventID)
	assert.Equal(t, uint64(7), event.Payload.CampaignID)
	assert.Equal(t, "2026-08-10", event.Payload.Date)
	assert.True(t, event.Payload.Spent.Equal(decimal.NewFromFloat(120.50)))
}

func TestToCampaignStatEventRejectsMissingCampaign(t *testing.T) {
	msg := &sarama.ConsumerMessage{Value: []byte(`{"event_id": "evt-2", "payload": {"date": "2026-08-10"}}`)}

	_, err := ToCampaignStatEvent(msg)
	assert.Error(t, err)
}

func TestToCampaignStatEventRejectsGarbage(t *testing.T) {
	msg := &sarama.ConsumerMessage{Value: []byte(`not json`)}

	_, err := ToCampaignStatEvent(msg)
	assert.Error(t, err)
}

func TestToProductStatEvent(t *testing.T) {
	msg := &sarama.ConsumerMessage{Value: []byte(`{
		"event_id": "evt-3",
		"payload": {
			"campaign_id": 7,
			"product_id": "SKU-9",
			"date": "2026-08-10",
			"orders": 3,
			"revenue": "450"
		}
	}`)}

	event, err := ToProductStatEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, "SKU-9", event.Payload.ProductID)
	assert.Equal(t, int64(3), event.Payload.Orders)
}

func TestToProductStatEventRejectsMissingProduct(t *testing.T) {
	msg := &sarama.ConsumerMessage{Value: []byte(`{"payload": {"campaign_id": 7, "date": "2026-08-10"}}`)}

	_, err := ToProductStatEvent(msg)
	assert.Error(t, err)
}
