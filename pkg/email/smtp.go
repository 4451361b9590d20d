package email

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SMTPGateway delivers mail over SMTP. A rate limiter in front of the
// transport keeps a burst of registrations from tripping the provider's
// sending limits.
type SMTPGateway struct {
	client  *mail.Client
	cfg     Config
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewSMTPGateway(cfg Config, log *zap.Logger) (*SMTPGateway, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPGateway{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		log:     log.Named("smtp"),
	}, nil
}

func (g *SMTPGateway) Send(ctx context.Context, msg Message) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for send slot: %w", err)
	}

	m := mail.NewMsg()
	if err := m.FromFormat(g.cfg.FromName, g.cfg.From); err != nil {
		return fmt.Errorf("invalid from address %s: %w", g.cfg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %s: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := g.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	g.log.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (g *SMTPGateway) SendWelcome(ctx context.Context, to, username, fullName string) error {
	return g.Send(ctx, Message{
		To:      to,
		Subject: welcomeSubject,
		Body:    buildWelcomeBody(username, fullName),
	})
}
