package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"travelhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- FLIGHTS ---------- */

// SearchFlights handles GET /flights/search
func (h *Handler) SearchFlights(c *gin.Context) {
	var q FlightSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "from, to and departureDate are required")
		return
	}

	result, err := h.service.SearchFlights(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrMissingParams) {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Dates must use the YYYY-MM-DD format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search flights")
		return
	}
	response.Success(c, http.StatusOK, result)
}

// FlightDeals handles GET /flights/deals
func (h *Handler) FlightDeals(c *gin.Context) {
	deals, err := h.service.FlightDeals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get flight deals")
		return
	}
	response.Success(c, http.StatusOK, deals)
}

// GetFlight handles GET /flights/:id
func (h *Handler) GetFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid flight ID")
		return
	}

	f, err := h.service.GetFlight(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Flight not found")
		return
	}
	response.Success(c, http.StatusOK, f)
}

/* ---------- HOTELS ---------- */

// SearchHotels handles GET /hotels/search
func (h *Handler) SearchHotels(c *gin.Context) {
	var q HotelSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "destination is required")
		return
	}

	hotels, err := h.service.SearchHotels(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search hotels")
		return
	}
	response.List(c, http.StatusOK, hotels, len(hotels), nil)
}

// HotelDeals handles GET /hotels/deals
func (h *Handler) HotelDeals(c *gin.Context) {
	deals, err := h.service.HotelDeals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get hotel deals")
		return
	}
	response.Success(c, http.StatusOK, deals)
}

// GetHotel handles GET /hotels/:id
func (h *Handler) GetHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
		return
	}
	response.Success(c, http.StatusOK, hotel)
}

/* ---------- CARS ---------- */

// SearchCars handles GET /cars/search
func (h *Handler) SearchCars(c *gin.Context) {
	var q CarSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "pickupLocation is required")
		return
	}

	cars, err := h.service.SearchCars(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search cars")
		return
	}
	response.List(c, http.StatusOK, cars, len(cars), nil)
}

// GetCar handles GET /cars/:id
func (h *Handler) GetCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid car ID")
		return
	}

	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Car not found")
		return
	}
	response.Success(c, http.StatusOK, car)
}
