package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"edu-crm/internal/config"
)

type Email struct {
	From     string
	To       []string
	Subject  string
	HtmlBody string
}

// Sender delivers email. The SMTP implementation is the only one in
// production; tests substitute their own.
type Sender interface {
	Send(email *Email) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) Sender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(email *Email) error {
	if email.From == "" {
		email.From = s.cfg.SMTPFrom
	}

	auth := smtp.PlainAuth(
		"",
		s.cfg.SMTPUsername,
		s.cfg.SMTPPassword,
		s.cfg.SMTPHost,
	)

	headers := map[string]string{
		"From":         email.From,
		"To":           strings.Join(email.To, ", "),
		"Subject":      email.Subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	msg := ""
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + email.HtmlBody

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	return smtp.SendMail(addr, auth, email.From, email.To, []byte(msg))
}
