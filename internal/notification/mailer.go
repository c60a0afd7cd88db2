// Package notification delivers summary emails over SMTP. Each send opens a
// fresh STARTTLS session scoped to that one delivery attempt.
package notification

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/smtp"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"

	"meeting-notes-backend/pkg/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("email credentials not configured")

const fromName = "Meeting Notes Summarizer"

// Mailer sends plain-text summary emails through an authenticated SMTP relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

// NewMailer creates a Mailer from the application config.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.EmailUsername,
		password: cfg.EmailPassword,
	}
}

// Configured reports whether both SMTP credentials are present.
func (m *Mailer) Configured() bool {
	return m.username != "" && m.password != ""
}

// SendSummary delivers the summary to all recipients in one message.
// At most one delivery attempt is made; the session is closed on every exit
// path, including mid-send failure.
func (m *Mailer) SendSummary(recipients []string, subject, summary, instruction string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	msg, err := m.buildMessage(recipients, subject, summary, instruction)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{ServerName: m.host}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := client.Mail(m.username); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, to := range recipients {
		if err := client.Rcpt(to); err != nil {
			return fmt.Errorf("invalid recipient %s: %w", to, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("failed to quit: %w", err)
	}

	return nil
}

func (m *Mailer) buildMessage(recipients []string, subject, summary, instruction string) ([]byte, error) {
	to := make([]*mail.Address, 0, len(recipients))
	for _, addr := range recipients {
		to = append(to, &mail.Address{Address: addr})
	}

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: fromName, Address: m.username}})
	h.SetAddressList("To", to)
	h.SetSubject(subject)

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, FormatBody(summary, instruction)); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FormatBody produces the plain-text email body: the instruction used for
// summarization, the summary between explicit delimiter lines, and a fixed
// disclaimer that the content is AI-generated.
func FormatBody(summary, instruction string) string {
	var b strings.Builder
	b.WriteString("Hello,\n\n")
	fmt.Fprintf(&b, "Please find the meeting summary below, generated with the following instructions: %q\n\n", instruction)
	b.WriteString("--- MEETING SUMMARY ---\n\n")
	b.WriteString(summary)
	b.WriteString("\n\n--- END SUMMARY ---\n\n")
	b.WriteString("This summary was generated using AI and may have been edited for clarity.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(fromName + "\n")
	return b.String()
}
