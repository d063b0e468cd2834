// Package email sends notification emails. It supports a development mode
// that only logs and a production SMTP mode.
package email

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strconv"
)

// Sender defines the interface for sending notification emails
type Sender interface {
	SendNotification(to, subject, body string) error
}

// Config holds email configuration
type Config struct {
	Mode     string // "log" or "smtp"
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// NewConfig creates a new email configuration from environment variables
func NewConfig() *Config {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return &Config{
		Mode:     getEnvOrDefault("EMAIL_MODE", "log"),
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnvOrDefault("SMTP_FROM", "noreply@classmate.local"),
		FromName: getEnvOrDefault("SMTP_FROM_NAME", "Classmate"),
	}
}

// NewSender creates a new email sender based on configuration
func NewSender(cfg *Config) Sender {
	if cfg.Mode == "smtp" {
		return &smtpSender{config: cfg}
	}
	return &logSender{}
}

// logSender logs emails to console (development mode)
type logSender struct{}

func (s *logSender) SendNotification(to, subject, body string) error {
	log.Printf("[DEV] Email to %s: %s: %s", to, subject, body)
	return nil
}

// smtpSender sends emails over SMTP (production mode)
type smtpSender struct {
	config *Config
}

func (s *smtpSender) SendNotification(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		s.config.FromName, s.config.From, to, subject, body)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
