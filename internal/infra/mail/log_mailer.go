// Package mail provides the outbound email collaborator. Actual SMTP or
// provider delivery happens outside this service; the default
// implementation records messages to the structured log so flows that
// depend on email (password reset) stay observable in every environment.
package mail

import (
	"context"
	"log/slog"

	"vitacart/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

// Send records the message instead of delivering it.
func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.InfoContext(ctx, "Outbound email",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("bodyBytes", len(body)),
	)

	return nil
}
