package booking

import (
	"errors"
	"net/http"
	"strconv"

	"travelhub/internal/domain"
	"travelhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /bookings
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleBookingError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// MyBookings handles GET /bookings/my-bookings
func (h *Handler) MyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	items, total, err := h.service.ListByUser(c.Request.Context(), userID, q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	response.List(c, http.StatusOK, items, int(total), response.Paginate(page, limit, int(total)))
}

// Get handles GET /bookings/:id
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64("user_id")
	isAdmin := c.GetString("role") == string(domain.RoleAdmin)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Get(c.Request.Context(), userID, id, isAdmin)
	if err != nil {
		handleBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Update handles PUT /bookings/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		handleBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Cancel handles PUT /bookings/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req) // body optional

	b, err := h.service.Cancel(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		handleBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Stats handles GET /bookings/stats
func (h *Handler) Stats(c *gin.Context) {
	userID := c.GetInt64("user_id")

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get booking stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	case errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Unknown booking type")
	case errors.Is(err, ErrInvalidDates):
		response.Error(c, http.StatusBadRequest, "INVALID_DATES", "End date must not be before start date")
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Booked item not found")
	case errors.Is(err, ErrItemUnavailable):
		response.Error(c, http.StatusConflict, "ITEM_UNAVAILABLE", "Booked item is not available")
	case errors.Is(err, ErrCancelWindowPast):
		response.Error(c, http.StatusUnprocessableEntity, "CANCEL_WINDOW_CLOSED", "Bookings can only be cancelled more than 24 hours before the start")
	case errors.Is(err, ErrModifyWindowPast):
		response.Error(c, http.StatusUnprocessableEntity, "MODIFY_WINDOW_CLOSED", "Bookings can only be modified more than 48 hours before the start")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Booking is already cancelled")
	default:
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to process booking")
	}
}
