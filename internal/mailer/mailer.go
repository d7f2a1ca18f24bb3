package mailer

import (
	"github.com/sirupsen/logrus"

	"github.com/secureaware/phishsim-backend/internal/config"
)

// Mailer delivers one message per call. Implementations must be bounded in
// latency: a slow or hanging delivery fails the call rather than stalling
// the caller's batch. A failed send is terminal; there is no retry policy.
type Mailer interface {
	Send(from, to, subject, textBody, htmlBody string) error
}

// FromConfig selects the Mailer implementation. MAIL_MODE=log substitutes a
// logging mailer for environments without outbound delivery.
func FromConfig(cfg *config.Config) Mailer {
	if cfg.MailMode == "log" {
		logrus.Info("Mail mode: log (no outbound delivery)")
		return NewLogMailer()
	}
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPTimeout)
}
