package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"myblog/internal/config"
)

type Mailer interface {
	Send(to []string, subject, html string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	cfg    *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	return &SMTPMailer{dialer: dialer, cfg: cfg}
}

func (m *SMTPMailer) Send(to []string, subject, html string) error {
	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.cfg.Mail.From, m.cfg.Mail.FromName)
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("ошибка при отправке письма: %w", err)
	}

	return nil
}
