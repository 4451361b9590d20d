package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/zap"
)

// DefaultRecipient receives the derived notifications. Routing to the
// actually-affected user is not implemented yet.
const DefaultRecipient = "admin@crm.com"

// EventHandler derives a notification from any event delivered on the
// customer, lead and task queues. It reads only the envelope fields, so an
// unknown variant is handled the same as a known one.
type EventHandler struct {
	service Service
	log     *zap.Logger
}

func NewEventHandler(service Service, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.Named("event-consumer"),
	}
}

func (h *EventHandler) HandleMessage(ctx context.Context, msg messaging.Message) error {
	meta, err := events.DecodeMetadata(msg.Body)
	if err != nil {
		return fmt.Errorf("failed to decode event envelope: %w", err)
	}

	h.log.Info("received event",
		zap.String("event_type", meta.EventType),
		zap.String("event_id", meta.EventID),
		zap.String("source", meta.Source))

	message := fmt.Sprintf("Event %s occurred at %s", meta.EventType, meta.Timestamp.Format(time.RFC3339))

	_, err = h.service.Create(ctx, CreateRequest{
		Type:        classify(meta.EventType),
		Message:     message,
		Recipient:   DefaultRecipient,
		RelatedType: meta.EventType,
	})
	if err != nil {
		return fmt.Errorf("failed to create notification for event %s: %w", meta.EventType, err)
	}

	h.log.Info("notification saved for event",
		zap.String("event_type", meta.EventType),
		zap.String("event_id", meta.EventID))
	return nil
}
