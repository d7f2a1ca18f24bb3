package mailer

import (
	"github.com/sirupsen/logrus"
)

// LogMailer records deliveries in the log instead of sending them. Used for
// dry-run exercises and local development.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the message metadata and reports success
func (m *LogMailer) Send(from, to, subject, textBody, htmlBody string) error {
	logrus.WithFields(logrus.Fields{
		"from":    from,
		"to":      to,
		"subject": subject,
		"bytes":   len(textBody),
	}).Info("Simulated mail delivery")
	return nil
}
