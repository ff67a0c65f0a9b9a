package booking

import (
	"context"
	"testing"
	"time"

	"travelhub/internal/domain"
	"travelhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, status, bookingType string, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, userID, status, bookingType, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) StatsByUser(ctx context.Context, userID int64) (*repository.BookingStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingStats), args.Error(1)
}

type MockFlightReader struct {
	mock.Mock
}

func (m *MockFlightReader) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockHotelReader struct {
	mock.Mock
}

func (m *MockHotelReader) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockCarReader struct {
	mock.Mock
}

func (m *MockCarReader) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockRefunder struct {
	mock.Mock
}

func (m *MockRefunder) Refund(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

// noopNotifier keeps tests quiet; delivery has its own tests.
type noopNotifier struct{}

func (noopNotifier) BookingCreated(context.Context, *domain.User, *domain.Booking)   {}
func (noopNotifier) BookingCancelled(context.Context, *domain.User, *domain.Booking) {}

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockBookingRepository, flights *MockFlightReader, hotels *MockHotelReader, cars *MockCarReader, refunder Refunder) *Service {
	users := new(MockUserReader)
	users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 1}, nil).Maybe()
	return NewService(repo, flights, hotels, cars, users, noopNotifier{}, refunder,
		WithClock(func() time.Time { return testNow }))
}

func testFlight() *domain.Flight {
	return &domain.Flight{
		ID:       7,
		Airline:  "Aegean",
		IsActive: true,
		Price: domain.FlightPricing{
			Economy:  200,
			Business: 600,
		},
		AvailableSeats: domain.SeatInventory{Economy: 50, Business: 8},
	}
}

func TestService_Create_FlightTotalIsFareTimesPassengers(t *testing.T) {
	repo := new(MockBookingRepository)
	flights := new(MockFlightReader)
	flights.On("GetByID", mock.Anything, int64(7)).Return(testFlight(), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := newTestService(repo, flights, nil, nil, nil)

	flightID := int64(7)
	b, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:      "flight",
		FlightID:  &flightID,
		StartDate: testNow.Add(72 * time.Hour),
		EndDate:   testNow.Add(80 * time.Hour),
		Passengers: []domain.Passenger{
			{Name: "Ana"}, {Name: "Ben"}, {Name: "Cora"},
		},
		FlightDetails: &domain.FlightDetails{Class: domain.CabinEconomy},
	})

	assert.NoError(t, err)
	assert.Equal(t, 600.0, b.TotalAmount) // 200 x 3
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.NotEmpty(t, b.BookingReference)
}

func TestService_Create_BusinessClassFare(t *testing.T) {
	repo := new(MockBookingRepository)
	flights := new(MockFlightReader)
	flights.On("GetByID", mock.Anything, int64(7)).Return(testFlight(), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, flights, nil, nil, nil)

	flightID := int64(7)
	b, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:          "flight",
		FlightID:      &flightID,
		StartDate:     testNow.Add(72 * time.Hour),
		EndDate:       testNow.Add(80 * time.Hour),
		Passengers:    []domain.Passenger{{Name: "Ana"}},
		FlightDetails: &domain.FlightDetails{Class: domain.CabinBusiness},
	})

	assert.NoError(t, err)
	assert.Equal(t, 600.0, b.TotalAmount)
}

func TestService_Create_NotEnoughSeats(t *testing.T) {
	flight := testFlight()
	flight.AvailableSeats.Business = 1

	repo := new(MockBookingRepository)
	flights := new(MockFlightReader)
	flights.On("GetByID", mock.Anything, int64(7)).Return(flight, nil)

	svc := newTestService(repo, flights, nil, nil, nil)

	flightID := int64(7)
	_, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:          "flight",
		FlightID:      &flightID,
		StartDate:     testNow.Add(72 * time.Hour),
		EndDate:       testNow.Add(80 * time.Hour),
		Passengers:    []domain.Passenger{{Name: "Ana"}, {Name: "Ben"}},
		FlightDetails: &domain.FlightDetails{Class: domain.CabinBusiness},
	})

	assert.ErrorIs(t, err, ErrItemUnavailable)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Create_HotelTotal(t *testing.T) {
	hotel := &domain.Hotel{
		ID:       3,
		Name:     "Harborview",
		IsActive: true,
		PricePerNight: domain.RoomPricing{
			Standard: 100,
			Deluxe:   180,
		},
	}

	repo := new(MockBookingRepository)
	hotels := new(MockHotelReader)
	hotels.On("GetByID", mock.Anything, int64(3)).Return(hotel, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, nil, hotels, nil, nil)

	hotelID := int64(3)
	start := time.Date(2026, 7, 10, 15, 0, 0, 0, time.UTC)
	b, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:      "hotel",
		HotelID:   &hotelID,
		StartDate: start,
		EndDate:   start.Add(3 * 24 * time.Hour),
		RoomDetails: &domain.RoomDetails{
			RoomType:      domain.RoomDeluxe,
			NumberOfRooms: 2,
			Guests:        4,
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1080.0, b.TotalAmount) // 180 x 2 rooms x 3 nights
}

func TestService_Create_CarTotalRoundsPartialDaysUp(t *testing.T) {
	car := &domain.Car{ID: 5, Make: "Toyota", Model: "Yaris", PricePerDay: 40, IsActive: true}

	repo := new(MockBookingRepository)
	cars := new(MockCarReader)
	cars.On("GetByID", mock.Anything, int64(5)).Return(car, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, nil, nil, cars, nil)

	carID := int64(5)
	start := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	b, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:      "car",
		CarID:     &carID,
		StartDate: start,
		EndDate:   start.Add(50 * time.Hour), // just over two days
	})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, b.TotalAmount) // 40 x 3 days
}

func TestService_Create_RejectsUnknownType(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:      "cruise",
		StartDate: testNow,
		EndDate:   testNow,
	})

	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_Create_RejectsReversedDates(t *testing.T) {
	svc := newTestService(new(MockBookingRepository), nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), 1, CreateBookingRequest{
		Type:      "flight",
		StartDate: testNow.Add(48 * time.Hour),
		EndDate:   testNow.Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestService_Get_OwnerOnly(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{ID: 10, UserID: 1}, nil)

	svc := newTestService(repo, nil, nil, nil, nil)

	_, err := svc.Get(context.Background(), 2, 10, false)
	assert.ErrorIs(t, err, ErrNotOwner)

	b, err := svc.Get(context.Background(), 2, 10, true) // admin sees everything
	assert.NoError(t, err)
	assert.Equal(t, int64(10), b.ID)
}

func TestService_Cancel_InsideWindowIsDenied(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:        10,
		UserID:    1,
		Status:    domain.BookingConfirmed,
		StartDate: testNow.Add(10 * time.Hour),
	}, nil)

	svc := newTestService(repo, nil, nil, nil, nil)

	_, err := svc.Cancel(context.Background(), 1, 10, "change of plans")

	assert.ErrorIs(t, err, ErrCancelWindowPast)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:        10,
		UserID:    1,
		Status:    domain.BookingCancelled,
		StartDate: testNow.Add(100 * time.Hour),
	}, nil)

	svc := newTestService(repo, nil, nil, nil, nil)

	_, err := svc.Cancel(context.Background(), 1, 10, "")

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestService_Cancel_PaidBookingGetsRefund(t *testing.T) {
	paid := &domain.Booking{
		ID:            10,
		UserID:        1,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		StartDate:     testNow.Add(72 * time.Hour),
	}

	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(paid, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	refunder := new(MockRefunder)
	refunder.On("Refund", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, nil, nil, nil, refunder)

	b, err := svc.Cancel(context.Background(), 1, 10, "trip cancelled")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, domain.PaymentRefunded, b.PaymentStatus)
	assert.Equal(t, "trip cancelled", b.CancelReason)
	assert.NotNil(t, b.CancelledAt)
	refunder.AssertExpectations(t)
}

func TestService_Update_OutsideModifyWindow(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:        10,
		UserID:    1,
		Status:    domain.BookingConfirmed,
		StartDate: testNow.Add(47 * time.Hour),
	}, nil)

	svc := newTestService(repo, nil, nil, nil, nil)

	newRequests := "late checkout"
	_, err := svc.Update(context.Background(), 1, 10, UpdateBookingRequest{SpecialRequests: &newRequests})

	assert.ErrorIs(t, err, ErrModifyWindowPast)
}

func TestService_Update_RepricesWhenDatesMove(t *testing.T) {
	hotelID := int64(3)
	hotel := &domain.Hotel{
		ID:            3,
		IsActive:      true,
		PricePerNight: domain.RoomPricing{Standard: 100},
	}
	start := testNow.Add(30 * 24 * time.Hour)

	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID:          10,
		UserID:      1,
		Type:        domain.BookingHotel,
		HotelID:     &hotelID,
		Status:      domain.BookingConfirmed,
		StartDate:   start,
		EndDate:     start.Add(2 * 24 * time.Hour),
		TotalAmount: 200,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	hotels := new(MockHotelReader)
	hotels.On("GetByID", mock.Anything, hotelID).Return(hotel, nil)

	svc := newTestService(repo, nil, hotels, nil, nil)

	newEnd := start.Add(5 * 24 * time.Hour)
	b, err := svc.Update(context.Background(), 1, 10, UpdateBookingRequest{EndDate: &newEnd})

	assert.NoError(t, err)
	assert.Equal(t, 500.0, b.TotalAmount) // 100 x 1 room x 5 nights
}
