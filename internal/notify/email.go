package notify

import (
	"context"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/sony/gobreaker/v2"
)

type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// EmailSender is the external email collaborator. Send returns the
// provider-assigned message id.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// ResendSender sends mail through the Resend API. Calls go through a circuit
// breaker so a struggling provider stops being hammered on every order.
type ResendSender struct {
	client  *resend.Client
	breaker *gobreaker.CircuitBreaker[*resend.SendEmailResponse]
}

func NewResendSender(apiKey string) *ResendSender {
	breaker := gobreaker.NewCircuitBreaker[*resend.SendEmailResponse](gobreaker.Settings{
		Name:    "resend-email",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &ResendSender{
		client:  resend.NewClient(apiKey),
		breaker: breaker,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg EmailMessage) (string, error) {
	sent, err := s.breaker.Execute(func() (*resend.SendEmailResponse, error) {
		return s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
			From:    msg.From,
			To:      []string{msg.To},
			Subject: msg.Subject,
			Html:    msg.HTML,
		})
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
