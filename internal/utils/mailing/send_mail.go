package mailing

import (
	"FoodHub/internal/utils"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer sends the transactional emails of the account lifecycle. Every
// method returns an error when delivery fails; callers abort the request.
type Mailer interface {
	SendVerificationEmail(email, verificationToken string) error
	SendWelcomeEmail(email, name string) error
	SendPasswordResetEmail(email, resetURL string) error
	SendResetSuccessEmail(email string) error
}

type smtpMailer struct {
	config MailConfig
}

func NewMailer(config MailConfig) Mailer {
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendVerificationEmail(email, verificationToken string) error {
	body, err := render(verificationTemplate, map[string]string{"Token": verificationToken})
	if err != nil {
		return err
	}
	return m.send(email, "Verify your email", body, "email verification")
}

func (m *smtpMailer) SendWelcomeEmail(email, name string) error {
	body, err := render(welcomeTemplate, map[string]string{"Name": name})
	if err != nil {
		return err
	}
	return m.send(email, "Welcome to FoodHub", body, "welcome email")
}

func (m *smtpMailer) SendPasswordResetEmail(email, resetURL string) error {
	body, err := render(passwordResetTemplate, map[string]string{"ResetURL": resetURL})
	if err != nil {
		return err
	}
	return m.send(email, "Reset your password", body, "password reset email")
}

func (m *smtpMailer) SendResetSuccessEmail(email string) error {
	body, err := render(resetSuccessTemplate, nil)
	if err != nil {
		return err
	}
	return m.send(email, "Password Reset Successful", body, "password reset success email")
}

func (m *smtpMailer) send(toEmail, subject, body, kind string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", strings.TrimSpace(toEmail))
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("failed to send %s: invalid SMTP port: %w", kind, err)
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	if err := dialer.DialAndSend(mailer); err != nil {
		return fmt.Errorf("failed to send %s: %w", kind, err)
	}
	return nil
}
