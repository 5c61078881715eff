package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/portfolio-showcase/portfolio-api/internal/contact/domain"
)

// emailSender is the part of the Resend client the mailer uses.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer delivers notifications through the Resend API
type ResendMailer struct {
	emails emailSender
}

// NewResendMailer creates a mailer authenticated with apiKey
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{emails: resend.NewClient(apiKey).Emails}
}

func newResendMailerWith(emails emailSender) *ResendMailer {
	return &ResendMailer{emails: emails}
}

// Send hands one notification to Resend. Errors reported by the API come
// back as *domain.ProviderError; cancellation is returned unchanged.
func (m *ResendMailer) Send(ctx context.Context, n domain.Notification) (domain.SendResult, error) {
	params := &resend.SendEmailRequest{
		From:    n.From,
		To:      n.To,
		ReplyTo: n.ReplyTo,
		Subject: n.Subject,
		Html:    n.HTML,
	}

	sent, err := m.emails.SendWithContext(ctx, params)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.SendResult{}, fmt.Errorf("resend send: %w", err)
		}
		return domain.SendResult{}, &domain.ProviderError{Message: err.Error()}
	}
	if sent == nil {
		return domain.SendResult{}, fmt.Errorf("resend send: empty response")
	}

	return domain.SendResult{ID: sent.Id}, nil
}
