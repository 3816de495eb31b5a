// Package notify delivers outbound crisis alerts. An alert is only ever sent
// on an explicit user action; nothing here fires automatically.
package notify

import (
	"context"
	"fmt"

	"mindcare/backend/pkg/metrics"

	gomail "gopkg.in/gomail.v2"
)

// Notifier sends a plain-text crisis summary to a recipient chosen by the user
type Notifier interface {
	SendCrisisAlert(ctx context.Context, recipient, summary string) error
}

// EmailNotifier sends alerts over SMTP
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailNotifier creates an SMTP-backed notifier
func NewEmailNotifier(host string, port int, username, password, from string) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendCrisisAlert sends one email with the summary. Failures are returned to
// the caller as a warning; the send is never retried automatically.
func (n *EmailNotifier) SendCrisisAlert(ctx context.Context, recipient, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "MindCare crisis alert")
	m.SetBody("text/plain", summary)

	if err := n.dialer.DialAndSend(m); err != nil {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to send crisis alert: %w", err)
	}

	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	return nil
}
