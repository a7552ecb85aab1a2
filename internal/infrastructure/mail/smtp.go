package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/csiedev/meeting-records/internal/usecase/notification"
)

// SMTPMailer delivers notification mail over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer for the given SMTP server
func NewSMTPMailer(host string, port int, username, password, from string, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// Send delivers one message, retrying transient failures with
// exponential backoff for up to a minute.
func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.Recipients...)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 2 * time.Second
	policy.MaxElapsedTime = time.Minute

	attempt := 0
	operation := func() error {
		attempt++
		if err := m.dialer.DialAndSend(mail); err != nil {
			m.logger.Warn("smtp delivery attempt failed",
				zap.Int("attempt", attempt),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("failed to send mail after %d attempts: %w", attempt, err)
	}

	m.logger.Info("mail delivered",
		zap.String("subject", msg.Subject),
		zap.Int("recipients", len(msg.Recipients)),
	)
	return nil
}
