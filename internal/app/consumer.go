package app

import (
	"context"

	"foome-hcm/internal/events"
	"foome-hcm/internal/messaging/kafka/consumer"
	"foome-hcm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
)

const consumerGroup = "hcm-notifications"

// RunConsumer reads decision events and materializes notifications. One
// reader per topic, sharing a consumer group so replicas split partitions.
func RunConsumer(ctx context.Context, cfg Config) error {
	a, err := BuildBase(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	notificationRepo := notification.NewRepository(a.DB)
	notificationService := notification.NewService(notificationRepo, a.Logger)

	timeoffReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		GroupID: consumerGroup,
		Topic:   events.TimeOffDecidedTopic,
	})
	defer timeoffReader.Close()

	documentReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		GroupID: consumerGroup,
		Topic:   events.DocumentReviewedTopic,
	})
	defer documentReader.Close()

	go consumer.ConsumeDocumentReviews(ctx, documentReader, notificationService, a.Logger)
	consumer.ConsumeTimeOffDecisions(ctx, timeoffReader, notificationService, a.Logger)
	return nil
}
