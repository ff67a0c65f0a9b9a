package inventory

import (
	"context"
	"encoding/json"
	"time"

	"travelhub/internal/cache"
	"travelhub/internal/domain"
)

const (
	dateLayout    = "2006-01-02"
	dealsLimit    = 6
	dealsCacheTTL = 10 * time.Minute
)

type Service struct {
	flights FlightRepository
	hotels  HotelRepository
	cars    CarRepository
	cache   *cache.Cache
}

func NewService(flights FlightRepository, hotels HotelRepository, cars CarRepository, c *cache.Cache) *Service {
	return &Service{
		flights: flights,
		hotels:  hotels,
		cars:    cars,
		cache:   c,
	}
}

/* ---------- FLIGHTS ---------- */

// SearchFlights finds the outbound leg options and, when a return date
// is given, the reverse leg options.
func (s *Service) SearchFlights(ctx context.Context, q FlightSearchQuery) (*FlightSearchResult, error) {
	depDay, err := time.Parse(dateLayout, q.DepartureDate)
	if err != nil {
		return nil, ErrMissingParams
	}

	outbound, err := s.flights.Search(ctx, q.From, q.To, depDay)
	if err != nil {
		return nil, err
	}

	result := &FlightSearchResult{Outbound: outbound, SearchParams: q}
	if q.ReturnDate != "" {
		retDay, err := time.Parse(dateLayout, q.ReturnDate)
		if err != nil {
			return nil, ErrMissingParams
		}
		ret, err := s.flights.Search(ctx, q.To, q.From, retDay)
		if err != nil {
			return nil, err
		}
		result.Return = ret
	}
	return result, nil
}

func (s *Service) FlightDeals(ctx context.Context) ([]domain.Flight, error) {
	if raw, ok := s.cache.Get(ctx, "flights:deals"); ok {
		var cached []domain.Flight
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	out, err := s.flights.Deals(ctx, dealsLimit)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, "flights:deals", string(raw), dealsCacheTTL)
	}
	return out, nil
}

func (s *Service) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFlightNotFound
	}
	return f, nil
}

/* ---------- HOTELS ---------- */

func (s *Service) SearchHotels(ctx context.Context, q HotelSearchQuery) ([]domain.Hotel, error) {
	hotels, err := s.hotels.SearchByCity(ctx, q.Destination)
	if err != nil {
		return nil, err
	}

	pr, hasRange := ParsePriceRange(q.PriceRange)
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if q.MinRating > 0 && h.Rating < q.MinRating {
			continue
		}
		if hasRange && !pr.Contains(h.PricePerNight.Standard) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *Service) HotelDeals(ctx context.Context) ([]domain.Hotel, error) {
	if raw, ok := s.cache.Get(ctx, "hotels:deals"); ok {
		var cached []domain.Hotel
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	out, err := s.hotels.Deals(ctx, dealsLimit)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, "hotels:deals", string(raw), dealsCacheTTL)
	}
	return out, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, ErrHotelNotFound
	}
	return h, nil
}

/* ---------- CARS ---------- */

func (s *Service) SearchCars(ctx context.Context, q CarSearchQuery) ([]domain.Car, error) {
	cars, err := s.cars.SearchByCity(ctx, q.PickupLocation, q.Category)
	if err != nil {
		return nil, err
	}

	pr, hasRange := ParsePriceRange(q.PriceRange)
	if !hasRange {
		return cars, nil
	}
	out := make([]domain.Car, 0, len(cars))
	for _, c := range cars {
		if pr.Contains(c.PricePerDay) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	c, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, ErrCarNotFound
	}
	return c, nil
}
