package email

import (
	"context"

	"go.uber.org/zap"
)

// LogGateway writes outbound mail to the log instead of an SMTP server. It
// backs the standalone environment where no mail transport exists.
type LogGateway struct {
	log *zap.Logger
}

func NewLogGateway(log *zap.Logger) *LogGateway {
	return &LogGateway{log: log.Named("email-log")}
}

func (g *LogGateway) Send(_ context.Context, msg Message) error {
	g.log.Info("email (not sent, log-only gateway)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body))
	return nil
}

func (g *LogGateway) SendWelcome(ctx context.Context, to, username, fullName string) error {
	return g.Send(ctx, Message{
		To:      to,
		Subject: welcomeSubject,
		Body:    buildWelcomeBody(username, fullName),
	})
}
