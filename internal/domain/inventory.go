package domain

import "time"

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

// FlightEndpoint is one leg terminus with its scheduled time.
type FlightEndpoint struct {
	Airport  string    `json:"airport"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
	DateTime time.Time `json:"date_time"`
}

type FlightPricing struct {
	Economy  float64 `json:"economy"`
	Business float64 `json:"business,omitempty"`
	First    float64 `json:"first,omitempty"`
}

type SeatInventory struct {
	Economy  int `json:"economy"`
	Business int `json:"business"`
	First    int `json:"first"`
}

type Flight struct {
	ID             int64          `json:"id"`
	Airline        string         `json:"airline"`
	FlightNumber   string         `json:"flight_number"`
	Departure      FlightEndpoint `json:"departure" gorm:"embedded;embeddedPrefix:departure_"`
	Arrival        FlightEndpoint `json:"arrival" gorm:"embedded;embeddedPrefix:arrival_"`
	Duration       string         `json:"duration"`
	Price          FlightPricing  `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	AvailableSeats SeatInventory  `json:"available_seats" gorm:"embedded;embeddedPrefix:seats_"`
	Aircraft       string         `json:"aircraft,omitempty"`
	Amenities      []string       `json:"amenities" gorm:"serializer:json"`
	IsActive       bool           `json:"is_active"`
}

// PriceForClass returns the fare for a cabin class, falling back to the
// economy fare when the class is not sold on this flight.
func (f *Flight) PriceForClass(class CabinClass) float64 {
	switch class {
	case CabinBusiness:
		if f.Price.Business > 0 {
			return f.Price.Business
		}
	case CabinFirst:
		if f.Price.First > 0 {
			return f.Price.First
		}
	}
	return f.Price.Economy
}

func (f *Flight) SeatsForClass(class CabinClass) int {
	switch class {
	case CabinBusiness:
		return f.AvailableSeats.Business
	case CabinFirst:
		return f.AvailableSeats.First
	default:
		return f.AvailableSeats.Economy
	}
}

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomSuite    RoomType = "suite"
)

type HotelLocation struct {
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty" gorm:"serializer:json"`
}

type RoomPricing struct {
	Standard float64 `json:"standard"`
	Deluxe   float64 `json:"deluxe,omitempty"`
	Suite    float64 `json:"suite,omitempty"`
}

type RoomInventory struct {
	Standard int `json:"standard"`
	Deluxe   int `json:"deluxe"`
	Suite    int `json:"suite"`
}

type Hotel struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Location      HotelLocation `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	PricePerNight RoomPricing   `json:"price_per_night" gorm:"embedded;embeddedPrefix:price_"`
	TotalRooms    RoomInventory `json:"total_rooms" gorm:"embedded;embeddedPrefix:rooms_"`
	Amenities     []string      `json:"amenities" gorm:"serializer:json"`
	Images        []string      `json:"images" gorm:"serializer:json"`
	Rating        float64       `json:"rating"`
	TotalReviews  int           `json:"total_reviews"`
	CheckInTime   string        `json:"check_in_time"`
	CheckOutTime  string        `json:"check_out_time"`
	IsActive      bool          `json:"is_active"`
}

func (h *Hotel) PriceForRoom(rt RoomType) float64 {
	switch rt {
	case RoomDeluxe:
		if h.PricePerNight.Deluxe > 0 {
			return h.PricePerNight.Deluxe
		}
	case RoomSuite:
		if h.PricePerNight.Suite > 0 {
			return h.PricePerNight.Suite
		}
	}
	return h.PricePerNight.Standard
}

type CarCategory string

const (
	CarEconomy     CarCategory = "economy"
	CarCompact     CarCategory = "compact"
	CarMidsize     CarCategory = "midsize"
	CarFullsize    CarCategory = "fullsize"
	CarLuxury      CarCategory = "luxury"
	CarSUV         CarCategory = "suv"
	CarConvertible CarCategory = "convertible"
)

type CarLocation struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty" gorm:"serializer:json"`
}

type Car struct {
	ID           int64       `json:"id"`
	Make         string      `json:"make"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	Category     CarCategory `json:"category"`
	PricePerDay  float64     `json:"price_per_day"`
	Location     CarLocation `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Features     []string    `json:"features" gorm:"serializer:json"`
	Images       []string    `json:"images" gorm:"serializer:json"`
	FuelType     string      `json:"fuel_type"`
	Transmission string      `json:"transmission"`
	Seats        int         `json:"seats"`
	IsActive     bool        `json:"is_active"`
}
