package notification

import (
	"net/http"

	"travelhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

// List handles GET /notifications
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	response.Success(c, http.StatusOK, h.center.List(userID))
}

// Dismiss handles DELETE /notifications/:id
func (h *Handler) Dismiss(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if !h.center.Dismiss(userID, c.Param("id")) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		return
	}
	response.Message(c, http.StatusOK, "Notification dismissed")
}

// DismissAll handles DELETE /notifications
func (h *Handler) DismissAll(c *gin.Context) {
	userID := c.GetInt64("user_id")
	h.center.DismissAll(userID)
	response.Message(c, http.StatusOK, "All notifications dismissed")
}
