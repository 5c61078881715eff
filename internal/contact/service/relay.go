package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"github.com/portfolio-showcase/portfolio-api/internal/contact/domain"
	"github.com/portfolio-showcase/portfolio-api/internal/logging"
)

// Mailer sends one notification. Provider rejections are reported as
// *domain.ProviderError.
type Mailer interface {
	Send(ctx context.Context, n domain.Notification) (domain.SendResult, error)
}

var notificationTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: sans-serif; padding: 20px; max-width: 600px; margin: 0 auto; border: 1px solid #eaeaea; border-radius: 5px;">
  <h2 style="color: #6366f1;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Message:</strong></p>
  <div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin-top: 10px;">
    {{.Body}}
  </div>
  <p style="color: #888; font-size: 12px; margin-top: 30px;">This message was sent from your website contact form.</p>
</div>
`))

type RelayOptions struct {
	From   string
	To     string
	Logger *zap.Logger
}

// Relay validates contact submissions and forwards them to the site owner.
type Relay struct {
	mailer Mailer
	from   string
	to     string
	logger *zap.Logger
}

func NewRelay(mailer Mailer, opts RelayOptions) *Relay {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Relay{
		mailer: mailer,
		from:   opts.From,
		to:     opts.To,
		logger: opts.Logger,
	}
}

// Submit sends exactly one notification for a valid submission. It never
// retries. Errors are domain.ErrValidation, *domain.DeliveryError or
// *domain.UnknownError.
func (r *Relay) Submit(ctx context.Context, s domain.Submission) (res domain.SendResult, err error) {
	log := logging.For(ctx, r.logger)

	if err := s.Validate(); err != nil {
		return domain.SendResult{}, err
	}
	s = s.Trimmed()

	defer func() {
		if p := recover(); p != nil {
			err = &domain.UnknownError{Err: fmt.Errorf("panic: %v", p)}
			log.Error("contact.submit", err)
		}
	}()

	n, err := r.buildNotification(s)
	if err != nil {
		log.Error("contact.submit", err)
		return domain.SendResult{}, &domain.UnknownError{Err: err}
	}

	res, err = r.mailer.Send(ctx, n)
	if err != nil {
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			log.Warn("contact.submit", "mail provider rejected message", zap.String("provider_error", pe.Message))
			return domain.SendResult{}, &domain.DeliveryError{Message: pe.Message}
		}
		log.Error("contact.submit", err)
		return domain.SendResult{}, &domain.UnknownError{Err: err}
	}

	log.Info("contact.submit", "contact message relayed", zap.String("message_id", res.ID))
	return res, nil
}

func (r *Relay) buildNotification(s domain.Submission) (domain.Notification, error) {
	body, err := RenderBody(s)
	if err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		From:    r.from,
		To:      []string{r.to},
		ReplyTo: s.Email,
		Subject: "New Contact Form Message from " + s.Name,
		HTML:    body,
	}, nil
}

// RenderBody renders the notification HTML. The message is escaped and its
// newlines become <br> line breaks.
func RenderBody(s domain.Submission) (string, error) {
	message := strings.ReplaceAll(s.Message, "\r\n", "\n")
	escaped := template.HTMLEscapeString(message)

	var buf bytes.Buffer
	err := notificationTemplate.Execute(&buf, struct {
		Name  string
		Email string
		Body  template.HTML
	}{
		Name:  s.Name,
		Email: s.Email,
		Body:  template.HTML(strings.ReplaceAll(escaped, "\n", "<br>")),
	})
	if err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}
	return buf.String(), nil
}
