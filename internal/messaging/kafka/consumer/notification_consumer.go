package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"foome-hcm/internal/events"
	"foome-hcm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTimeOffDecisions turns timeoff_decided events into in-app
// notifications for the requesting employee.
func ConsumeTimeOffDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timeoff_decided")
	log.Info("timeoff decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timeoff decision consumer stopped")
				return
			}
			log.Error("fetch timeoff decision message failed", zap.Error(err))
			continue
		}

		var event events.TimeOffDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode timeoff_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		title := fmt.Sprintf("Your %s request was %s", event.TimeOffType, event.Status)
		body := fmt.Sprintf("Time off request %s is now %s.", event.TimeOffID, event.Status)
		err = notificationService.Notify(ctx, event.CompanyID, event.EmployeeID,
			notification.KindTimeOffDecided, title, body)
		if err != nil {
			log.Error("create timeoff notification failed",
				zap.String("timeoff_id", event.TimeOffID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timeoff decision message failed", zap.Error(err))
			continue
		}

		log.Info("timeoff decision notification created",
			zap.String("timeoff_id", event.TimeOffID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

// ConsumeDocumentReviews does the same for document review outcomes.
func ConsumeDocumentReviews(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.document_reviewed")
	log.Info("document review consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("document review consumer stopped")
				return
			}
			log.Error("fetch document review message failed", zap.Error(err))
			continue
		}

		var event events.DocumentReviewedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode document_reviewed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		title := fmt.Sprintf("Document %q was %s", event.DocumentName, event.Status)
		body := fmt.Sprintf("Document %s is now %s.", event.DocumentName, event.Status)
		err = notificationService.Notify(ctx, event.CompanyID, event.EmployeeID,
			notification.KindDocumentReviewed, title, body)
		if err != nil {
			log.Error("create document notification failed",
				zap.String("document_id", event.DocumentID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit document review message failed", zap.Error(err))
			continue
		}

		log.Info("document review notification created",
			zap.String("document_id", event.DocumentID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
