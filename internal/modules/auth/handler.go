package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travelhub/internal/pkg/response"
	pkgvalidator "travelhub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const maxProfileImageSize = 5 << 20

type Handler struct {
	service       *Service
	bookingReader BookingStatsReader
	uploadDir     string
}

func NewHandler(service *Service, bookingReader BookingStatsReader, uploadDir string) *Handler {
	return &Handler{
		service:       service,
		bookingReader: bookingReader,
		uploadDir:     uploadDir,
	}
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var vErr *pkgvalidator.Error
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account fields", vErr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Auth(c, http.StatusCreated, token, user)
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to log in")
		return
	}

	response.Auth(c, http.StatusOK, token, user)
}

// Logout handles POST /auth/logout. Always succeeds for an
// authenticated caller; logging out twice is not an error.
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}
	response.Message(c, http.StatusOK, "Logged out")
}

// Me handles GET /auth/me; ?include_stats=true adds the booking summary.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	profile := ProfileResponse{User: user}
	if c.Query("include_stats") == "true" && h.bookingReader != nil {
		if stats, err := h.bookingReader.StatsByUser(c.Request.Context(), userID); err == nil && stats != nil {
			profile.Stats = &UserStats{
				TotalBookings:     stats.Total,
				PendingBookings:   stats.Pending,
				ConfirmedBookings: stats.Confirmed,
				CompletedBookings: stats.Completed,
				CancelledBookings: stats.Cancelled,
			}
		}
		if recent, err := h.bookingReader.RecentByUser(c.Request.Context(), userID, 3); err == nil {
			profile.RecentBookings = recent
		}
	}

	response.Success(c, http.StatusOK, profile)
}

// UpdateDetails handles PUT /auth/updatedetails
func (h *Handler) UpdateDetails(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateDetails(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdatePassword handles PUT /auth/updatepassword
func (h *Handler) UpdatePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.UpdatePassword(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrWrongPassword) {
			response.Error(c, http.StatusUnauthorized, "WRONG_PASSWORD", "Current password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// ForgotPassword handles POST /auth/forgotpassword. The answer is the
// same whether or not the email has an account.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Could not start password reset")
		return
	}
	response.Message(c, http.StatusOK, "If that email is registered, a reset link has been sent")
}

// ResetPassword handles PUT /auth/resetpassword/:token
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", "Reset token is invalid or expired")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "Could not reset password")
		return
	}

	response.Auth(c, http.StatusOK, token, user)
}

// UploadProfileImage handles POST /users/upload-profile-image
func (h *Handler) UploadProfileImage(c *gin.Context) {
	userID := c.GetInt64("user_id")

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No image uploaded")
		return
	}
	if file.Size > maxProfileImageSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image must be 5MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Only jpg, png and webp images are accepted")
		return
	}

	dir := filepath.Join(h.uploadDir, "profiles")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to create upload directory")
		return
	}

	filename := fmt.Sprintf("%d_%d%s", userID, time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save image")
		return
	}

	url := "/static/profiles/" + filename
	user, err := h.service.SetProfileImage(c.Request.Context(), userID, url)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to save profile image")
		return
	}
	response.Success(c, http.StatusOK, user)
}
