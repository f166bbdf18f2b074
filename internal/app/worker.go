package app

import (
	"context"
	"time"

	"foome-hcm/internal/messaging/kafka"
	"foome-hcm/internal/messaging/kafka/producer"
	"foome-hcm/internal/shared/connection"
)

// RunWorker drives the outbox poller until the context is cancelled. It is
// the only writer to Kafka; the API process just inserts outbox rows.
func RunWorker(ctx context.Context, cfg Config) error {
	a, err := BuildBase(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(a.SQLDB)
	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, a.Logger, 3*time.Second)
	return nil
}
