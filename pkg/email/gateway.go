// Package email sends outbound mail for the notification consumers.
package email

import (
	"context"
	"fmt"
)

// Message is one outbound plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Gateway sends emails. Implementations are synchronous: a nil return means
// the message was handed to the transport.
type Gateway interface {
	Send(ctx context.Context, msg Message) error
	// SendWelcome sends the account-created email to a new user.
	SendWelcome(ctx context.Context, to, username, fullName string) error
}

const welcomeSubject = "Welcome to CRM System!"

func buildWelcomeBody(username, fullName string) string {
	return fmt.Sprintf(`Dear %s,

Welcome to the CRM System! Your account has been successfully created.

Account Details:
- Username: %s
- Full Name: %s

You can now log in to the CRM system and start managing your customers, leads, and opportunities.

If you have any questions, please contact our support team.

Best regards,
CRM System Team
`, fullName, username, fullName)
}
