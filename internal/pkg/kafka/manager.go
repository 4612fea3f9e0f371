package kafka

import (
	"context"
	log "log/slog"

	"MarketAI/internal/api/config"
	"MarketAI/internal/service"

	"github.com/IBM/sarama"
)

// ConsumerManager owns the statistic event consumer groups.
type ConsumerManager struct {
	campaignStatConsumer sarama.ConsumerGroup
	campaignStatHandler  sarama.ConsumerGroupHandler

	productStatConsumer sarama.ConsumerGroup
	productStatHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(
	cfg *config.Config,
	statEntrySvc service.StatEntryService,
) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	campaignStatConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaCampaignStatConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	campaignStatHandler := NewCampaignStatHandler(statEntrySvc)

	productStatConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaProductStatConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	productStatHandler := NewProductStatHandler(statEntrySvc)

	return &ConsumerManager{
		campaignStatConsumer: campaignStatConsumer,
		campaignStatHandler:  campaignStatHandler,
		productStatConsumer:  productStatConsumer,
		productStatHandler:   productStatHandler,
	}, nil
}

// Start runs every consumer until the context is cancelled, then closes them.
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaCampaignStatConsumer.Topic
		log.Info("campaign stat consumer started", "topic", topic)
		for {
			if err := m.campaignStatConsumer.Consume(ctx, []string{topic}, m.campaignStatHandler); err != nil {
				log.Error("error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaProductStatConsumer.Topic
		log.Info("product stat consumer started", "topic", topic)
		for {
			if err := m.productStatConsumer.Consume(ctx, []string{topic}, m.productStatHandler); err != nil {
				log.Error("error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("kafka manager shutting down...")

	if err := m.campaignStatConsumer.Close(); err != nil {
		log.Error("failed to close campaign stat consumer", "err", err)
	}
	if err := m.productStatConsumer.Close(); err != nil {
		log.Error("failed to close product stat consumer", "err", err)
	}

	return nil
}
