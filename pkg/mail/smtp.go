package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/pixelvide/mailto-go/pkg/config"
)

// ErrNoRecipients is returned when To, Cc and Bcc are all empty.
var ErrNoRecipients = errors.New("no recipients provided")

// SMTPMailer implements Mailer using net/smtp
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send sends the given message using SMTP
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	if msg.From == "" {
		msg.From = defaultFrom(m.cfg)
	}

	recipients := allRecipients(msg)
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	fromAddr, err := parseEmailAddress(msg.From)
	if err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}

	body := buildMessage(msg)

	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	// Implicit TLS, usually port 465
	if m.cfg.Encryption == "ssl" || m.cfg.Port == "465" {
		return m.sendWithImplicitTLS(addr, auth, fromAddr, recipients, []byte(body))
	}

	// smtp.SendMail upgrades with STARTTLS when the server offers it
	return smtp.SendMail(addr, auth, fromAddr, recipients, []byte(body))
}

func (m *SMTPMailer) sendWithImplicitTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to dial TLS: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() {
		_ = client.Quit()
	}()

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, t := range to {
		if err = client.Rcpt(t); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", t, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}

func allRecipients(msg *Message) []string {
	recipients := make([]string, 0, len(msg.To)+len(msg.Cc)+len(msg.Bcc))
	for _, group := range [][]string{msg.To, msg.Cc, msg.Bcc} {
		for _, r := range group {
			if r = strings.TrimSpace(r); r != "" {
				recipients = append(recipients, r)
			}
		}
	}
	return recipients
}

// sanitize strips CR and LF so header values cannot inject headers
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", ""), "\n", "")
}

// buildMessage renders headers and the plain-text body. Line endings in the
// body are normalized to CRLF.
func buildMessage(msg *Message) string {
	headers := []string{
		fmt.Sprintf("From: %s", sanitize(msg.From)),
		fmt.Sprintf("To: %s", sanitize(strings.Join(msg.To, ", "))),
	}
	if len(msg.Cc) > 0 {
		headers = append(headers, fmt.Sprintf("Cc: %s", sanitize(strings.Join(msg.Cc, ", "))))
	}
	headers = append(headers,
		fmt.Sprintf("Subject: %s", sanitize(msg.Subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	)

	body := strings.ReplaceAll(strings.ReplaceAll(msg.Body, "\r\n", "\n"), "\n", "\r\n")
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}

// parseEmailAddress extracts the address part using net/mail
func parseEmailAddress(input string) (string, error) {
	addr, err := mail.ParseAddress(input)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}
