// Package email sends the outbound notifications of the ticket flow over
// SMTP. Sending is best-effort: callers log failures and move on.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"gestiontickets/internal/shared/config"
)

// Notifier is the outbound notification surface consumed by the usecases.
type Notifier interface {
	SendTicketStatusChanged(to, memberName string, ticketID uint, statusLabel, note string) error
}

type SMTPNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

func (s *SMTPNotifier) SendTicketStatusChanged(to, memberName string, ticketID uint, statusLabel, note string) error {
	subject := fmt.Sprintf("Ticket #%d is now %s", ticketID, statusLabel)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket update</h2>
			<p>Hello %s,</p>
			<p>Your ticket #%d moved to <strong>%s</strong>.</p>
			<p>%s</p>
		</body>
		</html>
	`, memberName, ticketID, statusLabel, note)

	plainBody := fmt.Sprintf(`
Hello %s,

Your ticket #%d moved to %s.

%s
	`, memberName, ticketID, statusLabel, note)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopNotifier is used when email is disabled in configuration.
type NoopNotifier struct{}

func (NoopNotifier) SendTicketStatusChanged(string, string, uint, string, string) error {
	return nil
}
