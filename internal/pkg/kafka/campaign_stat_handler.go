package kafka

import (
	"context"
	"errors"
	log "log/slog"

	"MarketAI/internal/service"

	"github.com/IBM/sarama"
)

// CampaignStatHandler consumes campaign day events published by external
// marketplace connectors and upserts them through the statistic write path.
type CampaignStatHandler struct {
	statEntrySvc service.StatEntryService
}

func NewCampaignStatHandler(statEntrySvc service.StatEntryService) *CampaignStatHandler {
	return &CampaignStatHandler{statEntrySvc: statEntrySvc}
}

func (s *CampaignStatHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("campaign stat consumer setup")
	return nil
}

func (s *CampaignStatHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("campaign stat consumer cleanup")
	return nil
}

func (s *CampaignStatHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("campaign stat consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("process batch error", "err", err)
		return err
	}
	log.Info("campaign stat consume claim end")
	return nil
}

// logic applies one event. Malformed payloads and events for unknown
// campaigns are dropped rather than retried: they can never succeed.
func (s *CampaignStatHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToCampaignStatEvent(msg)
	if err != nil {
		log.WarnContext(ctx, "dropping malformed campaign stat event", "err", err)
		return nil
	}

	err = s.statEntrySvc.IngestCampaignDay(ctx, &event.Payload)
	if errors.Is(err, service.ErrCampaignNotFound) || errors.Is(err, service.ErrParamInvalid) {
		log.WarnContext(ctx, "dropping campaign stat event", "event_id", event.EventID, "campaign_id", event.Payload.CampaignID, "err", err)
		return nil
	}
	return err
}
