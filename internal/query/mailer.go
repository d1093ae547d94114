package query

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig holds SMTP connection settings for server-side sends.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// IsConfigured returns true if SMTP settings are present.
func (c SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.From != ""
}

// Mailer delivers composed tickets to the support mailbox over SMTP.
type Mailer struct {
	config  SMTPConfig
	support string
}

// NewMailer creates a mailer targeting the support address.
func NewMailer(config SMTPConfig, supportAddress string) *Mailer {
	return &Mailer{config: config, support: supportAddress}
}

// Send delivers a composed ticket. Callers without SMTP configured
// should fall back to MailtoURL instead of calling Send.
func (m *Mailer) Send(t Ticket) error {
	if !m.config.IsConfigured() {
		return fmt.Errorf("SMTP not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.config.From,
		m.support,
		t.Subject,
		t.Body,
	)

	addr := m.config.Host + ":" + m.config.Port

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Pass, m.config.Host)
	}

	to := strings.Split(m.support, ",")
	if err := smtp.SendMail(addr, auth, m.config.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("sending query email: %w", err)
	}
	return nil
}
