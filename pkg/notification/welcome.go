package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sokol111/crm-commons/pkg/email"
	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"go.uber.org/zap"
)

// WelcomeHandler reacts to user registrations: it sends the welcome email
// and records an INFO notification for the new user. The two side effects
// share one failure domain: when the email fails, no notification is written
// either.
type WelcomeHandler struct {
	emails  email.Gateway
	service Service
	log     *zap.Logger
}

func NewWelcomeHandler(emails email.Gateway, service Service, log *zap.Logger) *WelcomeHandler {
	return &WelcomeHandler{
		emails:  emails,
		service: service,
		log:     log.Named("user-consumer"),
	}
}

func (h *WelcomeHandler) HandleMessage(ctx context.Context, msg messaging.Message) error {
	var event events.UserRegistered
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode user registration event: %w", err)
	}

	h.log.Info("received user registration event", zap.String("email", event.Email))

	if err := h.emails.SendWelcome(ctx, event.Email, event.Username, event.FullName); err != nil {
		return fmt.Errorf("failed to send welcome email to %s: %w", event.Email, err)
	}
	h.log.Info("welcome email sent", zap.String("email", event.Email))

	_, err := h.service.Create(ctx, CreateRequest{
		Type:        TypeInfo,
		Message:     "Welcome email sent to " + event.Email,
		Recipient:   event.Email,
		RelatedType: "USER",
	})
	if err != nil {
		return fmt.Errorf("failed to save notification for %s: %w", event.Email, err)
	}

	h.log.Info("notification saved", zap.String("email", event.Email))
	return nil
}
