package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"endpointmedia.co.za/web/internal/observability"
)

const (
	// ReceivedMessage answers contact and audit submissions.
	ReceivedMessage = "Your inquiry has been received. We will be in touch within 24 hours."
	// BookingMessage answers December special bookings.
	BookingMessage = "Thank you! We've received your booking. You will receive an invoice via email shortly."
)

// ErrNotify means the lead was valid but could not be delivered.
var ErrNotify = errors.New("leads: notify failed")

// Receipt is what the visitor is told after submitting.
type Receipt struct {
	ID      string
	Message string
	// Spam is for logs only and never shown to the visitor.
	Spam bool
}

// ServiceDeps wires a Service.
type ServiceDeps struct {
	Notifier Notifier
	Clock    func() time.Time
	NewID    func() string
}

// Service accepts leads.
type Service struct {
	notifier Notifier
	clock    func() time.Time
	newID    func() string
}

// NewService constructs a lead service.
func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Notifier == nil {
		return nil, errors.New("leads: notifier is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	newID := deps.NewID
	if newID == nil {
		newID = func() string { return ulid.Make().String() }
	}
	return &Service{notifier: deps.Notifier, clock: clock, newID: newID}, nil
}

// Submit normalises, validates and delivers a lead. A filled honeypot gets the
// usual receipt and goes nowhere.
func (s *Service) Submit(ctx context.Context, lead Lead) (Receipt, error) {
	lead.Normalize()
	receipt := Receipt{Message: ReceivedMessage}
	if lead.Kind == KindBooking {
		receipt.Message = BookingMessage
	}

	logger := observability.FromContext(ctx)
	if lead.IsSpam() {
		logger.Info("lead discarded", zap.String("kind", string(lead.Kind)), zap.Bool("spam", true))
		receipt.Spam = true
		receipt.ID = s.newID()
		return receipt, nil
	}

	if err := lead.Validate(); err != nil {
		return Receipt{}, err
	}

	lead.ID = s.newID()
	lead.ReceivedAt = s.clock().UTC()
	if err := s.notifier.Notify(ctx, lead); err != nil {
		logger.Error("lead notify failed", zap.String("leadId", lead.ID), zap.Error(err))
		return Receipt{}, fmt.Errorf("%w: %w", ErrNotify, err)
	}

	receipt.ID = lead.ID
	return receipt, nil
}
