// Package mailer sends the platform's transactional emails over SMTP.
// Sending is best-effort everywhere it is used: callers log failures and
// never let them fail the triggering operation.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Prasanth-1011/Blog-System/config"
	"github.com/Prasanth-1011/Blog-System/logger"
)

// IMailer defines the contract for the notification collaborator.
type IMailer interface {
	SendAdminDecisionEmail(email string, approved bool) error
	SendWelcomeEmail(email, name string) error
}

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewFromConfig builds a mailer from the loaded AppConfig. It returns nil
// when no SMTP host is configured, which disables email sending.
func NewFromConfig() *SMTPMailer {
	cfg := config.AppConfig.SMTP
	if cfg.Host == "" {
		logger.Log.Warn("SMTP host not configured, email notifications disabled")
		return nil
	}
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// SendAdminDecisionEmail notifies a user of the outcome of their admin request.
func (m *SMTPMailer) SendAdminDecisionEmail(email string, approved bool) error {
	subject := "Admin Request Rejected"
	body := "Your admin request has been reviewed and rejected. Please contact support for more information."
	if approved {
		subject = "Admin Request Approved"
		body = "Congratulations! Your admin request has been approved. You can now access the admin dashboard."
	}
	return m.send(email, subject, body)
}

// SendWelcomeEmail greets a newly registered user.
func (m *SMTPMailer) SendWelcomeEmail(email, name string) error {
	subject := "Welcome to Our Blog Platform"
	body := fmt.Sprintf("Hello %s,\n\nWelcome to our blog platform! We're excited to have you on board.\n\nBest regards,\nThe Blog Team", name)
	return m.send(email, subject, body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
