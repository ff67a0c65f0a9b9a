package domain

import "time"

type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
	BookingCar    BookingType = "car"
)

func ParseBookingType(s string) (BookingType, bool) {
	switch BookingType(s) {
	case BookingFlight, BookingHotel, BookingCar:
		return BookingType(s), true
	}
	return "", false
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type Passenger struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type RoomDetails struct {
	RoomType      RoomType `json:"room_type"`
	NumberOfRooms int      `json:"number_of_rooms"`
	Guests        int      `json:"guests"`
}

type FlightDetails struct {
	Class       CabinClass `json:"class"`
	SeatNumbers []string   `json:"seat_numbers,omitempty"`
}

// Booking ties a user to exactly one inventory item; which of FlightID,
// HotelID or CarID is set follows Type.
type Booking struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	Type             BookingType    `json:"type"`
	FlightID         *int64         `json:"flight_id,omitempty"`
	HotelID          *int64         `json:"hotel_id,omitempty"`
	CarID            *int64         `json:"car_id,omitempty"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	Passengers       []Passenger    `json:"passengers,omitempty" gorm:"serializer:json"`
	RoomDetails      *RoomDetails   `json:"room_details,omitempty" gorm:"serializer:json"`
	FlightDetails    *FlightDetails `json:"flight_details,omitempty" gorm:"serializer:json"`
	TotalAmount      float64        `json:"total_amount"`
	Currency         string         `json:"currency"`
	Status           BookingStatus  `json:"status"`
	PaymentStatus    PaymentStatus  `json:"payment_status"`
	BookingReference string         `json:"booking_reference"`
	SpecialRequests  string         `json:"special_requests,omitempty" gorm:"type:text"`
	PaymentIntentID  string         `json:"-"`
	CancelReason     string         `json:"cancel_reason,omitempty" gorm:"type:text"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	Flight *Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID"`
	Hotel  *Hotel  `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Car    *Car    `json:"car,omitempty" gorm:"foreignKey:CarID"`
}
