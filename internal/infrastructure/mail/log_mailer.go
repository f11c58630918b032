package mail

import (
	"context"

	"gamecatalog/pkg/logger"
)

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	logger.Info("Mail to %s: %s", to, subject)
	logger.Debug("Mail body for %s:\n%s", to, htmlBody)
	return nil
}
