package payment

import (
	"errors"
	"io"
	"net/http"

	"travelhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 65536

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createIntentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

// CreateIntent handles POST /payments/intent
func (h *Handler) CreateIntent(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required")
		return
	}

	clientSecret, err := h.service.CreateIntent(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "Booking is already paid")
		default:
			response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Failed to start payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"client_secret": clientSecret})
}

// Webhook handles POST /payments/webhook. Unverifiable payloads are
// rejected; everything else is acknowledged so stripe stops retrying.
func (h *Handler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "READ_FAILED", "Failed to read payload")
		return
	}

	err = h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			response.Error(c, http.StatusBadRequest, "INVALID_SIGNATURE", "Webhook signature verification failed")
			return
		}
		response.Error(c, http.StatusInternalServerError, "WEBHOOK_FAILED", "Failed to process event")
		return
	}
	c.Status(http.StatusOK)
}
