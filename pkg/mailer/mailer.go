package mailer

import (
	"context"
	"fmt"
	"time"

	"umkm-marketplace/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers a single HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender builds a go-mail client from config; the connection is opened per message.
func NewSMTPSender(config utils.EmailConfig) (Sender, error) {
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithTimeout(10 * time.Second),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if config.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.User),
			mail.WithPassword(config.Password),
		)
	}

	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &smtpSender{client: client, from: config.From}, nil
}

func (s *smtpSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

type logSender struct {
	log *zap.Logger
}

// NewLogSender hanya menulis email ke log, dipakai saat SMTP_HOST kosong (development)
func NewLogSender(log *zap.Logger) Sender {
	return &logSender{log: log.With(zap.String("component", "mailer"))}
}

func (s *logSender) Send(_ context.Context, to, subject, htmlBody string) error {
	s.log.Info("SMTP not configured, email not delivered",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	s.log.Debug("Email body", zap.String("body", htmlBody))
	return nil
}

// NewSender memilih SMTP atau log sesuai config
func NewSender(config utils.EmailConfig, log *zap.Logger) (Sender, error) {
	if config.Host == "" {
		return NewLogSender(log), nil
	}
	return NewSMTPSender(config)
}
