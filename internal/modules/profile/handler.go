package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharksports/internal/middleware"
	"sharksports/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.Actor(c)

	u, err := h.service.Get(c.Request.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.Actor(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.Update(c.Request.Context(), actor.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already registered")
		case errors.Is(err, ErrWrongPassword):
			response.Error(c, http.StatusBadRequest, "WRONG_PASSWORD", "Current password is incorrect")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
