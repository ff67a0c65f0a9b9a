package payment

import (
	"context"
	"testing"

	"travelhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Booking, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func TestAmountInCents(t *testing.T) {
	assert.Equal(t, int64(10000), amountInCents(100))
	assert.Equal(t, int64(10050), amountInCents(100.50))
	assert.Equal(t, int64(999), amountInCents(9.99))
	assert.Equal(t, int64(1), amountInCents(0.01))
}

func TestService_CreateIntent_RejectsForeignBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{ID: 10, UserID: 2}, nil)

	svc := NewService("", "", bookings)

	_, err := svc.CreateIntent(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestService_CreateIntent_RejectsPaidBooking(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:            10,
		UserID:        1,
		PaymentStatus: domain.PaymentPaid,
	}, nil)

	svc := NewService("", "", bookings)

	_, err := svc.CreateIntent(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestService_Refund_RequiresCompletedPayment(t *testing.T) {
	svc := NewService("", "", new(MockBookingRepository))

	err := svc.Refund(context.Background(), &domain.Booking{
		PaymentStatus: domain.PaymentPending,
	})
	assert.ErrorIs(t, err, ErrNothingToRefund)

	err = svc.Refund(context.Background(), &domain.Booking{
		PaymentStatus: domain.PaymentPaid, // but no intent recorded
	})
	assert.ErrorIs(t, err, ErrNothingToRefund)
}

func TestService_HandleWebhook_BadSignature(t *testing.T) {
	svc := NewService("", "whsec_test", new(MockBookingRepository))

	err := svc.HandleWebhook(context.Background(), []byte(`{}`), "bad-signature")

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestService_ApplyPaymentResult_ConfirmsPendingBooking(t *testing.T) {
	b := &domain.Booking{
		ID:              10,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		PaymentIntentID: "pi_123",
	}

	bookings := new(MockBookingRepository)
	bookings.On("GetByPaymentIntent", mock.Anything, "pi_123").Return(b, nil)
	bookings.On("Update", mock.Anything, b).Return(nil)

	svc := NewService("", "", bookings)

	err := svc.applyPaymentResult(context.Background(), "pi_123", domain.PaymentPaid)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_ApplyPaymentResult_FailureKeepsBookingPending(t *testing.T) {
	b := &domain.Booking{
		ID:              10,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		PaymentIntentID: "pi_123",
	}

	bookings := new(MockBookingRepository)
	bookings.On("GetByPaymentIntent", mock.Anything, "pi_123").Return(b, nil)
	bookings.On("Update", mock.Anything, b).Return(nil)

	svc := NewService("", "", bookings)

	err := svc.applyPaymentResult(context.Background(), "pi_123", domain.PaymentFailed)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, b.PaymentStatus)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestService_ApplyPaymentResult_UnknownIntentIsAcked(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByPaymentIntent", mock.Anything, "pi_ghost").Return(nil, assert.AnError)

	svc := NewService("", "", bookings)

	err := svc.applyPaymentResult(context.Background(), "pi_ghost", domain.PaymentPaid)

	assert.NoError(t, err)
	bookings.AssertNotCalled(t, "Update")
}
