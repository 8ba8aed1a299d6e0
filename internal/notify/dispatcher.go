package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/domain"
)

type Config struct {
	// OperatorEmail receives every order summary.
	OperatorEmail string
	// FromEmail must be a sender address verified with the email provider.
	FromEmail string
	// FromName is the display name on outgoing mail.
	FromName string
	// WhatsAppNumber is the operator's messaging channel identifier.
	WhatsAppNumber string
}

// Dispatcher fans a placed order out to the operator over two channels:
// an HTML email and a plain-text message (currently only logged). Channel
// failures are isolated; the order is already committed when Notify runs,
// so nothing here can roll it back.
type Dispatcher struct {
	email     EmailSender
	publisher EventPublisher
	logger    *zap.Logger
	cfg       Config
}

// NewDispatcher builds a dispatcher. email may be nil (sending disabled,
// e.g. no API key configured); publisher may be nil (no event brokers).
func NewDispatcher(email EmailSender, publisher EventPublisher, logger *zap.Logger, cfg Config) *Dispatcher {
	return &Dispatcher{
		email:     email,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Notify delivers the order summary on a best-effort basis. The returned
// error aggregates per-channel failures for the caller to log; it must never
// be treated as an order failure.
func (d *Dispatcher) Notify(ctx context.Context, order *domain.Order, items []domain.CartItem) error {
	var errs []error

	if err := d.sendEmail(ctx, order, items); err != nil {
		d.logger.Error("order email failed",
			zap.Int("order_id", order.ID),
			zap.String("to", d.cfg.OperatorEmail),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("email: %w", err))
	}

	// The messaging channel is log-only until a WhatsApp Business API
	// integration lands.
	message := FormatWhatsAppMessage(order, items)
	d.logger.Info("whatsapp notification",
		zap.Int("order_id", order.ID),
		zap.String("to", d.cfg.WhatsAppNumber),
		zap.String("message", message))

	if d.publisher != nil {
		if err := d.publisher.PublishOrderPlaced(ctx, order); err != nil {
			d.logger.Error("order event publish failed",
				zap.Int("order_id", order.ID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("event: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (d *Dispatcher) sendEmail(ctx context.Context, order *domain.Order, items []domain.CartItem) error {
	if d.email == nil {
		d.logger.Warn("email sender not configured, order email not sent",
			zap.Int("order_id", order.ID))
		return nil
	}

	msg := EmailMessage{
		From:    fmt.Sprintf("%s <%s>", d.cfg.FromName, d.cfg.FromEmail),
		To:      d.cfg.OperatorEmail,
		Subject: fmt.Sprintf("New Order #%d - Aura Elegance", order.ID),
		HTML:    FormatEmailHTML(order, items),
	}

	id, err := d.email.Send(ctx, msg)
	if err != nil {
		return err
	}

	d.logger.Info("order email sent",
		zap.Int("order_id", order.ID),
		zap.String("to", d.cfg.OperatorEmail),
		zap.String("email_id", id))
	return nil
}
