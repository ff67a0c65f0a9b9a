package client

import "time"

// Wire types mirror the API's JSON bodies so importers of this package
// never need to reach into the server's internals.

type NotificationPrefs struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

type Preferences struct {
	Language      string            `json:"language"`
	Currency      string            `json:"currency"`
	Notifications NotificationPrefs `json:"notifications"`
}

type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	Role         string      `json:"role"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	ProfileImage string      `json:"profile_image,omitempty"`
	Preferences  Preferences `json:"preferences"`
	IsVerified   bool        `json:"is_verified"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BudgetEstimate struct {
	Budget float64 `json:"budget"`
	Luxury float64 `json:"luxury"`
}

type Destination struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Country           string          `json:"country"`
	City              string          `json:"city,omitempty"`
	Category          string          `json:"category"`
	Images            []string        `json:"images"`
	Coordinates       *Coordinates    `json:"coordinates,omitempty"`
	AverageRating     float64         `json:"average_rating"`
	TotalReviews      int             `json:"total_reviews"`
	PopularActivities []string        `json:"popular_activities"`
	BestTimeToVisit   string          `json:"best_time_to_visit,omitempty"`
	EstimatedBudget   *BudgetEstimate `json:"estimated_budget,omitempty"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Passenger struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type RoomDetails struct {
	RoomType      string `json:"room_type"`
	NumberOfRooms int    `json:"number_of_rooms"`
	Guests        int    `json:"guests"`
}

type FlightDetails struct {
	Class       string   `json:"class"`
	SeatNumbers []string `json:"seat_numbers,omitempty"`
}

type Booking struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	Type             string         `json:"type"`
	FlightID         *int64         `json:"flight_id,omitempty"`
	HotelID          *int64         `json:"hotel_id,omitempty"`
	CarID            *int64         `json:"car_id,omitempty"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	Passengers       []Passenger    `json:"passengers,omitempty"`
	RoomDetails      *RoomDetails   `json:"room_details,omitempty"`
	FlightDetails    *FlightDetails `json:"flight_details,omitempty"`
	TotalAmount      float64        `json:"total_amount"`
	Currency         string         `json:"currency"`
	Status           string         `json:"status"`
	PaymentStatus    string         `json:"payment_status"`
	BookingReference string         `json:"booking_reference"`
	SpecialRequests  string         `json:"special_requests,omitempty"`
	CancelReason     string         `json:"cancel_reason,omitempty"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
