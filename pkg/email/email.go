package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendReceipt emails the rendered receipt lines as a plain-text, monospaced
// message. The lines are forwarded exactly as rendered; alignment depends on
// the recipient viewing them in a fixed-width font.
func (s *EmailService) SendReceipt(toEmail, shopName, billNo string, lines []string) error {
	subject := fmt.Sprintf("Receipt %s - %s", billNo, shopName)
	message := s.buildTextEmail(toEmail, subject, strings.Join(lines, "\r\n"))
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildTextEmail builds a plain-text email message
func (s *EmailService) buildTextEmail(to, subject, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + body)
}
