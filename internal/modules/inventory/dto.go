package inventory

import (
	"encoding/json"

	"travelhub/internal/domain"
)

type FlightSearchQuery struct {
	From          string `form:"from" json:"from" binding:"required"`
	To            string `form:"to" json:"to" binding:"required"`
	DepartureDate string `form:"departureDate" json:"departure_date" binding:"required"`
	ReturnDate    string `form:"returnDate" json:"return_date,omitempty"`
	Passengers    int    `form:"passengers" json:"passengers,omitempty"`
	Class         string `form:"class" json:"class,omitempty"`
}

// FlightSearchResult pairs the outbound options with the return leg
// options on a round trip; Return is nil for one-way searches. The
// query is echoed back so the client can label the result set.
type FlightSearchResult struct {
	Outbound     []domain.Flight   `json:"outbound"`
	Return       []domain.Flight   `json:"return,omitempty"`
	SearchParams FlightSearchQuery `json:"search_params"`
}

// PriceRange arrives as a JSON-encoded object inside a single query
// parameter, e.g. priceRange={"min":50,"max":200}.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func ParsePriceRange(raw string) (PriceRange, bool) {
	if raw == "" {
		return PriceRange{}, false
	}
	var pr PriceRange
	if err := json.Unmarshal([]byte(raw), &pr); err != nil {
		return PriceRange{}, false
	}
	return pr, true
}

func (pr PriceRange) Contains(price float64) bool {
	if pr.Min > 0 && price < pr.Min {
		return false
	}
	if pr.Max > 0 && price > pr.Max {
		return false
	}
	return true
}

type HotelSearchQuery struct {
	Destination string  `form:"destination" binding:"required"`
	CheckIn     string  `form:"checkIn"`
	CheckOut    string  `form:"checkOut"`
	Guests      int     `form:"guests"`
	Rooms       int     `form:"rooms"`
	PriceRange  string  `form:"priceRange"`
	MinRating   float64 `form:"minRating"`
}

type CarSearchQuery struct {
	PickupLocation string `form:"pickupLocation" binding:"required"`
	PickupDate     string `form:"pickupDate"`
	DropoffDate    string `form:"dropoffDate"`
	Category       string `form:"category"`
	PriceRange     string `form:"priceRange"`
}
