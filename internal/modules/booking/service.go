package booking

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

const (
	defaultCurrency = "USD"
	defaultLimit    = 20
	maxLimit        = 100
)

type Service struct {
	repo     BookingRepository
	flights  FlightReader
	hotels   HotelReader
	cars     CarReader
	users    UserReader
	notifier Notifier
	refunder Refunder

	cancelWindow time.Duration
	modifyWindow time.Duration
	now          func() time.Time
}

type Option func(*Service)

func WithWindows(cancel, modify time.Duration) Option {
	return func(s *Service) {
		s.cancelWindow = cancel
		s.modifyWindow = modify
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo BookingRepository, flights FlightReader, hotels HotelReader, cars CarReader, users UserReader, notifier Notifier, refunder Refunder, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		flights:      flights,
		hotels:       hotels,
		cars:         cars,
		users:        users,
		notifier:     notifier,
		refunder:     refunder,
		cancelWindow: DefaultCancelWindow,
		modifyWindow: DefaultModifyWindow,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	bType, ok := domain.ParseBookingType(req.Type)
	if !ok {
		return nil, ErrInvalidType
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDates
	}

	b := &domain.Booking{
		UserID:          userID,
		Type:            bType,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Passengers:      req.Passengers,
		RoomDetails:     req.RoomDetails,
		FlightDetails:   req.FlightDetails,
		Currency:        defaultCurrency,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: req.SpecialRequests,
	}

	// The client never sends the price; it is always recomputed from the
	// inventory item here.
	total, err := s.priceBooking(ctx, b, req)
	if err != nil {
		return nil, err
	}
	b.TotalAmount = total

	b.BookingReference = newReference()
	if err := s.repo.Create(ctx, b); err != nil {
		if !isUniqueViolation(err) {
			return nil, err
		}
		// reference collision: regenerate once and retry
		b.BookingReference = newReference()
		if err := s.repo.Create(ctx, b); err != nil {
			return nil, err
		}
	}

	s.notify(userID, b, s.notifier.BookingCreated)
	return b, nil
}

func (s *Service) priceBooking(ctx context.Context, b *domain.Booking, req CreateBookingRequest) (float64, error) {
	switch b.Type {
	case domain.BookingFlight:
		if req.FlightID == nil {
			return 0, ErrItemNotFound
		}
		flight, err := s.flights.GetByID(ctx, *req.FlightID)
		if err != nil {
			return 0, ErrItemNotFound
		}
		if !flight.IsActive {
			return 0, ErrItemUnavailable
		}
		b.FlightID = &flight.ID

		class := domain.CabinEconomy
		if req.FlightDetails != nil && req.FlightDetails.Class != "" {
			class = req.FlightDetails.Class
		}
		seats := len(req.Passengers)
		if seats < 1 {
			seats = 1
		}
		if flight.SeatsForClass(class) < seats {
			return 0, ErrItemUnavailable
		}
		return flight.PriceForClass(class) * float64(seats), nil

	case domain.BookingHotel:
		if req.HotelID == nil {
			return 0, ErrItemNotFound
		}
		hotel, err := s.hotels.GetByID(ctx, *req.HotelID)
		if err != nil {
			return 0, ErrItemNotFound
		}
		if !hotel.IsActive {
			return 0, ErrItemUnavailable
		}
		b.HotelID = &hotel.ID

		roomType := domain.RoomStandard
		rooms := 1
		if req.RoomDetails != nil {
			if req.RoomDetails.RoomType != "" {
				roomType = req.RoomDetails.RoomType
			}
			if req.RoomDetails.NumberOfRooms > 0 {
				rooms = req.RoomDetails.NumberOfRooms
			}
		}
		nights := wholeDays(req.StartDate, req.EndDate)
		return hotel.PriceForRoom(roomType) * float64(rooms) * float64(nights), nil

	case domain.BookingCar:
		if req.CarID == nil {
			return 0, ErrItemNotFound
		}
		car, err := s.cars.GetByID(ctx, *req.CarID)
		if err != nil {
			return 0, ErrItemNotFound
		}
		if !car.IsActive {
			return 0, ErrItemUnavailable
		}
		b.CarID = &car.ID

		days := wholeDays(req.StartDate, req.EndDate)
		return car.PricePerDay * float64(days), nil
	}
	return 0, ErrInvalidType
}

func (s *Service) ListByUser(ctx context.Context, userID int64, q ListQuery) ([]domain.Booking, int64, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.ListByUser(ctx, userID, q.Status, q.Type, limit, (page-1)*limit)
}

func (s *Service) Get(ctx context.Context, userID, id int64, isAdmin bool) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID && !isAdmin {
		return nil, ErrNotOwner
	}
	return b, nil
}

// Update applies a modification to a booking the user still may change.
// The total is recomputed when the stay length or room details moved.
func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	if !CanModify(b, s.now(), s.modifyWindow) {
		return nil, ErrModifyWindowPast
	}

	reprice := false
	if req.StartDate != nil {
		b.StartDate = *req.StartDate
		reprice = true
	}
	if req.EndDate != nil {
		b.EndDate = *req.EndDate
		reprice = true
	}
	if b.EndDate.Before(b.StartDate) {
		return nil, ErrInvalidDates
	}
	if req.Passengers != nil {
		b.Passengers = req.Passengers
		reprice = true
	}
	if req.RoomDetails != nil {
		b.RoomDetails = req.RoomDetails
		reprice = true
	}
	if req.SpecialRequests != nil {
		b.SpecialRequests = *req.SpecialRequests
	}

	if reprice {
		total, err := s.priceBooking(ctx, b, CreateBookingRequest{
			FlightID:      b.FlightID,
			HotelID:       b.HotelID,
			CarID:         b.CarID,
			StartDate:     b.StartDate,
			EndDate:       b.EndDate,
			Passengers:    b.Passengers,
			RoomDetails:   b.RoomDetails,
			FlightDetails: b.FlightDetails,
		})
		if err != nil {
			return nil, err
		}
		b.TotalAmount = total
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, userID, id int64, reason string) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrNotOwner
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !CanCancel(b, s.now(), s.cancelWindow) {
		return nil, ErrCancelWindowPast
	}

	now := s.now()
	b.Status = domain.BookingCancelled
	b.CancelReason = reason
	b.CancelledAt = &now

	if b.PaymentStatus == domain.PaymentPaid && s.refunder != nil {
		if err := s.refunder.Refund(ctx, b); err != nil {
			return nil, err
		}
		b.PaymentStatus = domain.PaymentRefunded
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.notify(userID, b, s.notifier.BookingCancelled)
	return b, nil
}

func (s *Service) Stats(ctx context.Context, userID int64) (*repository.BookingStats, error) {
	return s.repo.StatsByUser(ctx, userID)
}

func (s *Service) notify(userID int64, b *domain.Booking, fn func(context.Context, *domain.User, *domain.Booking)) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			log.Printf("booking notify: load user %d: %v", userID, err)
			return
		}
		fn(ctx, user, b)
	}()
}

// wholeDays counts calendar span in days, partial days rounding up, with
// a one-day floor for same-day rentals.
func wholeDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func newReference() string {
	return "TRV-" + strings.ToUpper(uuid.NewString()[:8])
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
