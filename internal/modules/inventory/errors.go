package inventory

import "errors"

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrHotelNotFound  = errors.New("hotel not found")
	ErrCarNotFound    = errors.New("car not found")
	ErrMissingParams  = errors.New("missing required search parameters")
)
