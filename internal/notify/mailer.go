package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer отправляет письма через SendGrid API
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    Logger
}

// NewSendGridMailer создает SendGrid транспорт.
// Возвращает nil при пустом API ключе, вызывающий код подставляет заглушку.
func NewSendGridMailer(apiKey, fromEmail, fromName string, logger Logger) *SendGridMailer {
	if apiKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// Send отправляет одно письмо
func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.HTML, msg.HTML)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid returned status %d", response.StatusCode)
	}

	m.logger.Info("email sent to=%s subject=%q status=%d", msg.To, msg.Subject, response.StatusCode)
	return nil
}

// StubMailer логирует письма вместо отправки.
// Используется в тестах и когда SendGrid не сконфигурирован.
type StubMailer struct {
	logger Logger
}

// NewStubMailer создает заглушку почтового транспорта
func NewStubMailer(logger Logger) *StubMailer {
	return &StubMailer{logger: logger}
}

// Send логирует письмо, ничего не отправляя
func (m *StubMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info("stub mailer: would send email to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
