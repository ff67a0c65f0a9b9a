package notification

import (
	"context"
	"fmt"
	"log"

	"travelhub/internal/domain"
)

// BookingNotifier fans a booking event out to the in-app center, email
// and SMS, honoring the user's channel preferences. Send failures are
// logged and never propagate into the booking flow.
type BookingNotifier struct {
	center *Center
	mailer *Mailer
	sms    *SMSSender
}

func NewBookingNotifier(center *Center, mailer *Mailer, sms *SMSSender) *BookingNotifier {
	return &BookingNotifier{
		center: center,
		mailer: mailer,
		sms:    sms,
	}
}

func (n *BookingNotifier) BookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) {
	n.center.Push(user.ID, domain.NotifySuccess,
		"Booking received",
		fmt.Sprintf("Your %s booking %s is in. Total %.2f %s.", b.Type, b.BookingReference, b.TotalAmount, b.Currency))

	if user.Preferences.Notifications.Email {
		if err := n.mailer.SendBookingConfirmation(ctx, user.Email, user.Name, b.BookingReference, b.TotalAmount, b.Currency); err != nil {
			log.Printf("booking %s confirmation mail: %v", b.BookingReference, err)
		}
	}
	if user.Preferences.Notifications.Push && user.Phone != "" {
		msg := fmt.Sprintf("TravelHub: booking %s received, total %.2f %s", b.BookingReference, b.TotalAmount, b.Currency)
		if err := n.sms.Send(ctx, user.Phone, msg); err != nil {
			log.Printf("booking %s confirmation sms: %v", b.BookingReference, err)
		}
	}
}

func (n *BookingNotifier) PaymentSucceeded(_ context.Context, b *domain.Booking) {
	n.center.Push(b.UserID, domain.NotifySuccess,
		"Payment received",
		fmt.Sprintf("Payment for booking %s went through. You are confirmed.", b.BookingReference))
}

func (n *BookingNotifier) PaymentFailed(_ context.Context, b *domain.Booking) {
	n.center.Push(b.UserID, domain.NotifyError,
		"Payment failed",
		fmt.Sprintf("Payment for booking %s failed. Please try again.", b.BookingReference))
}

func (n *BookingNotifier) BookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking) {
	n.center.Push(user.ID, domain.NotifyInfo,
		"Booking cancelled",
		fmt.Sprintf("Booking %s has been cancelled.", b.BookingReference))

	if user.Preferences.Notifications.Email {
		if err := n.mailer.SendBookingCancellation(ctx, user.Email, user.Name, b.BookingReference); err != nil {
			log.Printf("booking %s cancellation mail: %v", b.BookingReference, err)
		}
	}
}
