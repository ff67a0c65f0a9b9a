package destination

import (
	"errors"
	"net/http"
	"strconv"

	"travelhub/internal/pkg/response"
	pkgvalidator "travelhub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /destinations
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	items, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get destinations")
		return
	}

	page, limit := normalizePage(q.Page, q.Limit)
	response.List(c, http.StatusOK, items, total, response.Paginate(page, limit, total))
}

// Search handles GET /destinations/search
func (h *Handler) Search(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	items, err := h.service.Search(c.Request.Context(), q.Q, Filters{
		Category:  q.Category,
		MinBudget: q.MinBudget,
		MaxBudget: q.MaxBudget,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search destinations")
		return
	}

	response.List(c, http.StatusOK, SortBy(items, q.Sort), len(items), nil)
}

// Popular handles GET /destinations/popular
func (h *Handler) Popular(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			limit = val
		}
	}

	items, err := h.service.Popular(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get popular destinations")
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ByCategory handles GET /destinations/category/:category
func (h *Handler) ByCategory(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "Invalid query parameters")
		return
	}

	items, total, err := h.service.ByCategory(c.Request.Context(), c.Param("category"), q)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown destination category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get destinations")
		return
	}

	page, limit := normalizePage(q.Page, q.Limit)
	response.List(c, http.StatusOK, items, total, response.Paginate(page, limit, total))
}

// Get handles GET /destinations/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid destination ID")
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
		return
	}
	response.Success(c, http.StatusOK, d)
}

/* ---------- ADMIN HANDLERS ---------- */

// Create handles POST /destinations
func (h *Handler) Create(c *gin.Context) {
	var req CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *pkgvalidator.Error
		switch {
		case errors.Is(err, ErrInvalidCategory):
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown destination category")
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination fields", vErr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create destination")
		}
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// Update handles PUT /destinations/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid destination ID")
		return
	}

	var req UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		var vErr *pkgvalidator.Error
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
		case errors.Is(err, ErrInvalidCategory):
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown destination category")
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination fields", vErr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update destination")
		}
		return
	}
	response.Success(c, http.StatusOK, d)
}

// Delete handles DELETE /destinations/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid destination ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete destination")
		return
	}
	response.Message(c, http.StatusOK, "Destination deleted")
}
