package kafka

import (
	"context"
	"errors"
	log "log/slog"

	"MarketAI/internal/service"

	"github.com/IBM/sarama"
)

// ProductStatHandler consumes per-product day events.
type ProductStatHandler struct {
	statEntrySvc service.StatEntryService
}

func NewProductStatHandler(statEntrySvc service.StatEntryService) *ProductStatHandler {
	return &ProductStatHandler{statEntrySvc: statEntrySvc}
}

func (s *ProductStatHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("product stat consumer setup")
	return nil
}

func (s *ProductStatHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("product stat consumer cleanup")
	return nil
}

func (s *ProductStatHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("product stat consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("process batch error", "err", err)
		return err
	}
	log.Info("product stat consume claim end")
	return nil
}

func (s *ProductStatHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToProductStatEvent(msg)
	if err != nil {
		log.WarnContext(ctx, "dropping malformed product stat event", "err", err)
		return nil
	}

	err = s.statEntrySvc.IngestProductDay(ctx, &event.Payload)
	if errors.Is(err, service.ErrCampaignNotFound) || errors.Is(err, service.ErrParamInvalid) {
		log.WarnContext(ctx, "dropping product stat event", "event_id", event.EventID, "campaign_id", event.Payload.CampaignID, "err", err)
		return nil
	}
	return err
}
