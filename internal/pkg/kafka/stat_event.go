package kafka

import (
	"errors"

	"MarketAI/internal/api/dto"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// StatEvent is the envelope external connectors publish when they have a day
// of statistics ready. Payload carries the raw counters; derived ratios are
// never part of the wire format.
type StatEvent[T any] struct {
	EventID string `json:"event_id"`
	Source  string `json:"source"`
	Payload T      `json:"payload"`
}

// ToCampaignStatEvent decodes a campaign day event from a kafka message.
func ToCampaignStatEvent(msg *sarama.ConsumerMessage) (*StatEvent[dto.CampaignDayDTO], error) {
	var event StatEvent[dto.CampaignDayDTO]
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, err
	}
	if event.Payload.CampaignID == 0 {
		return nil, errors.New("campaign stat event missing campaign id")
	}
	return &event, nil
}

// ToProductStatEvent decodes a product day event from a kafka message.
func ToProductStatEvent(msg *sarama.ConsumerMessage) (*StatEvent[dto.ProductDayDTO], error) {
	var event StatEvent[dto.ProductDayDTO]
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, err
	}
	if event.Payload.CampaignID == 0 || event.Payload.ProductID == "" {
		return nil, errors.New("product stat event missing campaign or product id")
	}
	return &event, nil
}
