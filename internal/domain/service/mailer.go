package service

import "context"

// Mailer abstracts outbound email. Delivery mechanics (SMTP, provider
// APIs) are an external collaborator; the domain only hands over a
// subject, recipient and body.
type Mailer interface {
	// Send dispatches a single message to the recipient.
	Send(ctx context.Context, to, subject, body string) error
}
