package booking

import (
	"time"

	"travelhub/internal/domain"
)

type CreateBookingRequest struct {
	Type            string                `json:"type" binding:"required"`
	FlightID        *int64                `json:"flight_id"`
	HotelID         *int64                `json:"hotel_id"`
	CarID           *int64                `json:"car_id"`
	StartDate       time.Time             `json:"start_date" binding:"required"`
	EndDate         time.Time             `json:"end_date" binding:"required"`
	Passengers      []domain.Passenger    `json:"passengers"`
	RoomDetails     *domain.RoomDetails   `json:"room_details"`
	FlightDetails   *domain.FlightDetails `json:"flight_details"`
	SpecialRequests string                `json:"special_requests"`
}

type UpdateBookingRequest struct {
	StartDate       *time.Time          `json:"start_date"`
	EndDate         *time.Time          `json:"end_date"`
	Passengers      []domain.Passenger  `json:"passengers"`
	RoomDetails     *domain.RoomDetails `json:"room_details"`
	SpecialRequests *string             `json:"special_requests"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type ListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	Type   string `form:"type"`
}
