package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
	"github.com/stripe/stripe-go/v78/refund"
	"github.com/stripe/stripe-go/v78/webhook"

	"travelhub/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

// Notifier tells the booking owner how their payment went. Implementations
// must not block; failures are logged, not returned.
type Notifier interface {
	PaymentSucceeded(ctx context.Context, b *domain.Booking)
	PaymentFailed(ctx context.Context, b *domain.Booking)
}

type Service struct {
	bookings      BookingRepository
	webhookSecret string
	notifier      Notifier
}

func NewService(secretKey, webhookSecret string, bookings BookingRepository) *Service {
	stripe.Key = secretKey
	return &Service{
		bookings:      bookings,
		webhookSecret: webhookSecret,
	}
}

// SetNotifier attaches the payment outcome notifier. A nil notifier
// keeps webhook processing silent.
func (s *Service) SetNotifier(n Notifier) { s.notifier = n }

// CreateIntent opens a payment intent for a pending booking and hands
// the client secret back for the client-side confirmation step.
func (s *Service) CreateIntent(ctx context.Context, userID, bookingID int64) (string, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return "", ErrBookingNotFound
	}
	if b.UserID != userID {
		return "", ErrNotOwner
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return "", ErrAlreadyPaid
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountInCents(b.TotalAmount)),
		Currency:    stripe.String(strings.ToLower(b.Currency)),
		Description: stripe.String(fmt.Sprintf("TravelHub booking %s", b.BookingReference)),
	}
	params.AddMetadata("booking_id", strconv.FormatInt(b.ID, 10))
	params.AddMetadata("booking_reference", b.BookingReference)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	b.PaymentIntentID = pi.ID
	if err := s.bookings.Update(ctx, b); err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// Refund reverses the charge behind a paid booking.
func (s *Service) Refund(ctx context.Context, b *domain.Booking) error {
	if b.PaymentIntentID == "" || b.PaymentStatus != domain.PaymentPaid {
		return ErrNothingToRefund
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(b.PaymentIntentID),
	}
	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("refund payment intent %s: %w", b.PaymentIntentID, err)
	}
	return nil
}

// HandleWebhook verifies and applies a stripe event. Succeeded payments
// confirm the booking; failed ones mark it so the client can retry.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return ErrInvalidSignature
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("parse payment_intent: %w", err)
		}
		return s.applyPaymentResult(ctx, pi.ID, domain.PaymentPaid)

	case "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("parse payment_intent: %w", err)
		}
		return s.applyPaymentResult(ctx, pi.ID, domain.PaymentFailed)

	default:
		log.Printf("stripe webhook: ignoring event %s", event.Type)
		return nil
	}
}

func (s *Service) applyPaymentResult(ctx context.Context, intentID string, status domain.PaymentStatus) error {
	b, err := s.bookings.GetByPaymentIntent(ctx, intentID)
	if err != nil {
		// the intent may belong to another environment; ack and move on
		log.Printf("stripe webhook: no booking for intent %s", intentID)
		return nil
	}

	b.PaymentStatus = status
	if status == domain.PaymentPaid && b.Status == domain.BookingPending {
		b.Status = domain.BookingConfirmed
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return err
	}

	if s.notifier != nil {
		if status == domain.PaymentPaid {
			s.notifier.PaymentSucceeded(ctx, b)
		} else {
			s.notifier.PaymentFailed(ctx, b)
		}
	}
	return nil
}

func amountInCents(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
